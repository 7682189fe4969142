package http

import (
	"errors"
	"io"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
	"github.com/maboutik/maboutik-web/internal/infrastructure/rest"
)

// respondError traduce un error de dominio al estado HTTP y cuerpo del
// gateway. Los errores de validación del backend conservan el mapa
// campo -> mensajes para que la vista los pinte campo a campo.
func respondError(c *fiber.Ctx, err error) error {
	var apiErr *rest.APIError
	if errors.As(err, &apiErr) && apiErr.HasFields() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "veuillez corriger les champs en erreur",
			Fields:  apiErr.Fields,
		})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ressource introuvable"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "session expirée, veuillez vous reconnecter"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "accès refusé"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnavailable), errors.Is(err, domain.ErrBadShape):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "service momentanément indisponible"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// parseListParams lee los parámetros de listado de la query string. Valores
// ausentes o malformados caen en el valor por defecto (sin filtro, orden por
// fecha descendente, página 1), nunca en error: un filtro roto en la URL no
// debe tumbar la pantalla.
func parseListParams(c *fiber.Ctx) repository.ListParams {
	p := repository.ListParams{
		Query:   c.Query("q"),
		Status:  c.Query("statut"),
		SortKey: c.Query("tri", repository.SortByDate),
		Page:    c.QueryInt("page", 1),
	}
	if p.SortKey != repository.SortByAmount {
		p.SortKey = repository.SortByDate
	}
	p.SortDesc = c.Query("ordre", repository.SortDesc) != repository.SortAsc
	if p.Page < 1 {
		p.Page = 1
	}
	if t, err := time.Parse("2006-01-02", c.Query("date_debut")); err == nil {
		p.DateFrom = &t
	}
	if t, err := time.Parse("2006-01-02", c.Query("date_fin")); err == nil {
		end := t.AddDate(0, 0, 1).Add(-time.Nanosecond) // fin de journée inclusive
		p.DateTo = &end
	}
	if d, err := decimal.NewFromString(c.Query("montant_min")); err == nil {
		p.AmountMin = &d
	}
	if d, err := decimal.NewFromString(c.Query("montant_max")); err == nil {
		p.AmountMax = &d
	}
	return p
}

// formImage extrae la parte multipart "image" si la petición la trae.
// Sin parte (o petición no multipart) devuelve nil sin error: la foto es
// siempre opcional y su ausencia significa "sin cambio".
func formImage(c *fiber.Ctx) (*entity.ImageFile, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	return readImagePart(fh)
}

func readImagePart(fh *multipart.FileHeader) (*entity.ImageFile, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &entity.ImageFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
