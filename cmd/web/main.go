package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/maboutik/maboutik-web/docs"
	"github.com/maboutik/maboutik-web/internal/application/dashboard"
	"github.com/maboutik/maboutik-web/internal/application/usecase"
	infrapdf "github.com/maboutik/maboutik-web/internal/infrastructure/pdf"
	"github.com/maboutik/maboutik-web/internal/infrastructure/rest"
	httpRouter "github.com/maboutik/maboutik-web/internal/interfaces/http"
	"github.com/maboutik/maboutik-web/pkg/config"
	"github.com/maboutik/maboutik-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.API.BaseURL).
		Msg("iniciando gateway")

	client := rest.NewClient(cfg.API, log)

	boutiqueRepo := rest.NewBoutiqueRepository(client)
	productRepo := rest.NewProductRepository(client)
	catBoutiqueRepo := rest.NewCategoryBoutiqueRepository(client)
	catProduitRepo := rest.NewCategoryProduitRepository(client)
	orderRepo := rest.NewOrderRepository(client)
	paymentRepo := rest.NewPaymentRepository(client)
	userRepo := rest.NewUserRepository(client)
	commentRepo := rest.NewCommentRepository(client)
	messageRepo := rest.NewMessageRepository(client)
	notificationRepo := rest.NewNotificationRepository(client)
	statsRepo := rest.NewStatsRepository(client)

	receiptGen := infrapdf.NewMarotoReceiptGenerator()

	pageSize := cfg.API.PageSize
	boutiqueViews := usecase.NewBoutiqueViews(boutiqueRepo, catBoutiqueRepo, pageSize, log)
	produitViews := usecase.NewProduitViews(productRepo, catProduitRepo, pageSize, log)
	categoryViews := usecase.NewCategoryViews(catBoutiqueRepo, catProduitRepo)
	orderViews := usecase.NewOrderViews(orderRepo, boutiqueRepo, receiptGen, pageSize, log)
	paymentViews := usecase.NewPaymentViews(paymentRepo, pageSize, log)
	userViews := usecase.NewUserViews(userRepo, pageSize)
	engagementViews := usecase.NewEngagementViews(commentRepo, messageRepo, notificationRepo)
	dashboardUC := dashboard.NewUseCase(statsRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MaBoutik Web Gateway",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BoutiqueViews:   boutiqueViews,
		ProduitViews:    produitViews,
		CategoryViews:   categoryViews,
		OrderViews:      orderViews,
		PaymentViews:    paymentViews,
		UserViews:       userViews,
		EngagementViews: engagementViews,
		DashboardUC:     dashboardUC,
		JWTSecret:       cfg.JWT.Secret,
		PublicURL:       cfg.App.PublicURL,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("gateway detenido")
}
