package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maboutik/maboutik-web/internal/application/dashboard"
	"github.com/maboutik/maboutik-web/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BoutiqueViews   *usecase.BoutiqueViews
	ProduitViews    *usecase.ProduitViews
	CategoryViews   *usecase.CategoryViews
	OrderViews      *usecase.OrderViews
	PaymentViews    *usecase.PaymentViews
	UserViews       *usecase.UserViews
	EngagementViews *usecase.EngagementViews
	DashboardUC     *dashboard.UseCase
	JWTSecret       string
	PublicURL       string
}

// Router registra las rutas del gateway: vitrine pública, dashboard du
// marchand (Bearer) y console admin (Bearer + rol admin).
func Router(app *fiber.App, deps RouterDeps) {
	storefront := NewStorefrontHandler(deps.BoutiqueViews, deps.ProduitViews, deps.EngagementViews, deps.PublicURL)
	produits := NewProduitHandler(deps.ProduitViews)
	categories := NewCategoryHandler(deps.CategoryViews)
	orders := NewOrderHandler(deps.OrderViews)
	payments := NewPaymentHandler(deps.PaymentViews)
	engagement := NewEngagementHandler(deps.EngagementViews)
	dash := NewDashboardHandler(deps.DashboardUC)
	admin := NewAdminHandler(deps.BoutiqueViews, deps.UserViews)

	app.Get("/sitemap.xml", storefront.Sitemap)

	api := app.Group("/api")

	// Vitrine (público, sesión anónima)
	api.Get("/boutiques", storefront.Directory)
	api.Get("/categories", storefront.DirectoryCategories)
	api.Get("/boutiques/:id", storefront.Boutique)
	api.Get("/boutiques/:id/produits", storefront.BoutiqueProducts)
	api.Get("/boutiques/:id/categories", storefront.BoutiqueProductCategories)
	api.Get("/produits/:id", storefront.Product)
	api.Get("/produits/:id/commentaires", storefront.ProductComments)
	api.Post("/produits/:id/commentaires", storefront.AddComment)

	// Dashboard du marchand (Bearer)
	boutique := api.Group("/boutique", AuthMiddleware(deps.JWTSecret))
	boutique.Get("/dashboard", dash.Summary)

	boutique.Get("/produits", produits.List)
	boutique.Post("/produits", produits.Create)
	boutique.Get("/produits/:id", produits.GetByID)
	boutique.Put("/produits/:id", produits.Update)
	boutique.Patch("/produits/:id/statut", produits.UpdateStatus)
	boutique.Delete("/produits/:id", produits.Delete)

	boutique.Get("/categories", categories.ListProduitCategories)
	boutique.Post("/categories", categories.CreateProduitCategory)
	boutique.Put("/categories/:id", categories.UpdateProduitCategory)
	boutique.Delete("/categories/:id", categories.DeleteProduitCategory)

	boutique.Get("/commandes", orders.List)
	boutique.Get("/commandes/export.csv", orders.ExportCSV)
	boutique.Get("/commandes/:id", orders.GetByID)
	boutique.Get("/commandes/:id/recu.pdf", orders.Receipt)
	boutique.Patch("/commandes/:id/statut", orders.UpdateStatus)
	boutique.Delete("/commandes/:id", orders.Delete)

	boutique.Get("/paiements", payments.ListByBoutique)

	boutique.Get("/messages", engagement.Inbox)
	boutique.Patch("/messages/:id/lu", engagement.MarkMessageRead)
	boutique.Delete("/messages/:id", engagement.DeleteMessage)
	boutique.Get("/notifications", engagement.Notifications)
	boutique.Patch("/notifications/:id/lu", engagement.MarkNotificationRead)

	// Console admin (Bearer + rol admin)
	adminGroup := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireAdmin())
	adminGroup.Get("/boutiques", admin.ListBoutiques)
	adminGroup.Post("/boutiques", admin.CreateBoutique)
	adminGroup.Get("/boutiques/:id", admin.GetBoutique)
	adminGroup.Put("/boutiques/:id", admin.UpdateBoutique)
	adminGroup.Patch("/boutiques/:id/statut", admin.UpdateBoutiqueStatus)
	adminGroup.Delete("/boutiques/:id", admin.DeleteBoutique)

	adminGroup.Get("/categories", categories.ListBoutiqueCategories)
	adminGroup.Post("/categories", categories.CreateBoutiqueCategory)
	adminGroup.Put("/categories/:id", categories.UpdateBoutiqueCategory)
	adminGroup.Delete("/categories/:id", categories.DeleteBoutiqueCategory)

	adminGroup.Get("/paiements", payments.ListAll)

	adminGroup.Get("/comptes", admin.ListUsers)
	adminGroup.Post("/comptes", admin.CreateUser)
	adminGroup.Put("/comptes/:id", admin.UpdateUser)
	adminGroup.Delete("/comptes/:id", admin.DeleteUser)
}
