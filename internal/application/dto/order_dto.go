package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemResponse línea de commande para las vistas. Conserva las dos
// familias de nombres que expone el backend (productName y produit).
type OrderItemResponse struct {
	ProductName string          `json:"productName"`
	Produit     string          `json:"produit"`
	Quantity    int             `json:"quantite"`
	Price       decimal.Decimal `json:"prix"`
}

// OrderResponse salida de una commande para los listados del dashboard.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerName string              `json:"customerName"`
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	Phone        string              `json:"telephone"`
	Address      string              `json:"adresse"`
	Total        decimal.Decimal     `json:"total"`
	TotalLabel   string              `json:"total_affiche"` // formateado en FCFA
	Status       string              `json:"statut"`
	BadgeLabel   string              `json:"badge_label"`
	BadgeColor   string              `json:"badge_color"`
	Items        []OrderItemResponse `json:"articles"`
	CreatedAt    time.Time           `json:"date_commande"`
}

// OrderListResponse listado paginado de commandes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Meta  ListMeta        `json:"meta"`
}

// UpdateOrderStatusRequest cambio de estado desde la fila del listado.
type UpdateOrderStatusRequest struct {
	Status string `json:"statut" validate:"required"`
}
