package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

// ProduitInput borrador de producto enviado al backend (create o update).
// Image nil significa "sin cambio de foto"; con Image presente la petición
// sale como multipart/form-data.
type ProduitInput struct {
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal
	OldPrice    decimal.Decimal
	Quantity    int
	Status      string
	Image       *entity.ImageFile
}

// ProduitFormRequest cuerpo del formulario de producto tal como llega de la
// vista (campos escalares; la imagen llega como parte multipart aparte).
type ProduitFormRequest struct {
	CategoryID  string `json:"categorie" form:"categorie"`
	Name        string `json:"nom" form:"nom" validate:"required"`
	Description string `json:"description" form:"description"`
	Price       string `json:"prix" form:"prix" validate:"required"`
	OldPrice    string `json:"ancien_prix" form:"ancien_prix"`
	Quantity    string `json:"quantite" form:"quantite"`
	Status      string `json:"statut" form:"statut"`
}

// ProduitResponse salida de un producto para las vistas.
type ProduitResponse struct {
	ID           string          `json:"id"`
	BoutiqueID   string          `json:"boutique"`
	CategoryID   string          `json:"categorie"`
	CategoryName string          `json:"categorie_nom"`
	Name         string          `json:"nom"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"prix"`
	PriceLabel   string          `json:"prix_affiche"` // formateado en FCFA
	OldPrice     decimal.Decimal `json:"ancien_prix"`
	Quantity     int             `json:"quantite"`
	Image        string          `json:"image"`
	Status       string          `json:"statut"`
	BadgeLabel   string          `json:"badge_label"`
	BadgeColor   string          `json:"badge_color"`
	CreatedAt    time.Time       `json:"date_creation"`
}

// ProduitListResponse listado paginado de productos.
type ProduitListResponse struct {
	Items []ProduitResponse `json:"items"`
	Meta  ListMeta          `json:"meta"`
}
