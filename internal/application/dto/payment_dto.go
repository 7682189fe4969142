package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentResponse salida de un paiement para los listados.
type PaymentResponse struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"commande"`
	BoutiqueID  string          `json:"boutique"`
	Amount      decimal.Decimal `json:"montant"`
	AmountLabel string          `json:"montant_affiche"`
	Method      string          `json:"methode"`
	Reference   string          `json:"reference"`
	Status      string          `json:"statut"`
	BadgeLabel  string          `json:"badge_label"`
	BadgeColor  string          `json:"badge_color"`
	CreatedAt   time.Time       `json:"date_paiement"`
}

// PaymentListResponse listado paginado de paiements.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Meta  ListMeta          `json:"meta"`
}
