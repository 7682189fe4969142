package dto

import (
	"time"

	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

// BoutiqueInput borrador de boutique enviado al backend.
type BoutiqueInput struct {
	Name        string
	Description string
	CategoryID  string
	Phone       string
	Address     string
	Status      string
	Image       *entity.ImageFile
}

// BoutiqueFormRequest cuerpo del formulario de boutique (consola admin).
type BoutiqueFormRequest struct {
	Name        string `json:"nom" form:"nom" validate:"required"`
	Description string `json:"description" form:"description"`
	CategoryID  string `json:"categorie" form:"categorie" validate:"required"`
	Phone       string `json:"telephone" form:"telephone"`
	Address     string `json:"adresse" form:"adresse"`
	Status      string `json:"statut" form:"statut"`
}

// BoutiqueResponse salida de una boutique.
type BoutiqueResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"nom"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	CategoryID   string    `json:"categorie"`
	CategoryName string    `json:"categorie_nom"`
	Phone        string    `json:"telephone"`
	Address      string    `json:"adresse"`
	Status       string    `json:"statut"`
	BadgeLabel   string    `json:"badge_label"`
	BadgeColor   string    `json:"badge_color"`
	CreatedAt    time.Time `json:"date_creation"`
}

// BoutiqueListResponse listado paginado de boutiques.
type BoutiqueListResponse struct {
	Items []BoutiqueResponse `json:"items"`
	Meta  ListMeta           `json:"meta"`
}

// UpdateBoutiqueStatusRequest cambio de estado desde la consola admin.
type UpdateBoutiqueStatusRequest struct {
	Status string `json:"statut" validate:"required"`
}
