package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un paiement.
const (
	PaiementReussi    = "reussi"
	PaiementEnAttente = "en_attente"
	PaiementEchoue    = "echoue"
	PaiementRembourse = "rembourse"
)

// Payment representa el paiement asociado a una commande.
type Payment struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"commande"`
	BoutiqueID string          `json:"boutique"`
	Amount     decimal.Decimal `json:"montant"`
	Method     string          `json:"methode"` // mobile_money, carte, especes
	Reference  string          `json:"reference"`
	Status     string          `json:"statut"` // ver constantes Paiement*
	CreatedAt  time.Time       `json:"date_paiement"`
}
