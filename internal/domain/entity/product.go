package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un producto.
const (
	ProduitActif   = "actif"
	ProduitInactif = "inactif"
	ProduitRupture = "rupture"
)

// PlaceholderImage imagen por defecto cuando un producto se crea sin foto.
const PlaceholderImage = "/static/img/placeholder.png"

// Product representa un artículo en venta, siempre ligado a una boutique y a
// una categoría de producto de esa boutique.
type Product struct {
	ID           string          `json:"id"`
	BoutiqueID   string          `json:"boutique"`
	CategoryID   string          `json:"categorie"`
	CategoryName string          `json:"categorie_nom"` // solo lectura, para listados y formularios
	Name         string          `json:"nom"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"prix"`
	OldPrice     decimal.Decimal `json:"ancien_prix"` // cero si no hay promoción
	Quantity     int             `json:"quantite"`
	Image        string          `json:"image"`
	Status       string          `json:"statut"` // ver constantes Produit*
	CreatedAt    time.Time       `json:"date_creation"`
}

// ImageFile archivo binario adjunto a un formulario (foto de producto o de
// boutique). Se envía como parte multipart junto a los campos escalares.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}
