package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una commande.
const (
	CommandeEnAttente = "en_attente"
	CommandeConfirmee = "confirmee"
	CommandeExpediee  = "expediee"
	CommandeLivree    = "livree"
	CommandeAnnulee   = "annulee"
)

// Order representa una commande de un cliente en una boutique.
//
// El backend expone dos familias de campos para el cliente: "customerName"
// (forma principal usada por los listados) y "first_name"/"last_name" (forma
// histórica que sigue llegando en el payload). Se conservan ambas tal cual;
// el export CSV emite las dos y los tests fijan la salida.
type Order struct {
	ID           string          `json:"id"`
	BoutiqueID   string          `json:"boutique"`
	CustomerName string          `json:"customerName"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Phone        string          `json:"telephone"`
	Address      string          `json:"adresse"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"statut"` // ver constantes Commande*
	Items        []OrderItem     `json:"articles"`
	CreatedAt    time.Time       `json:"date_commande"`
}

// OrderItem línea de una commande. Misma dualidad de campos que Order:
// "productName" (principal) y "produit" (histórico) llegan ambos del backend.
type OrderItem struct {
	ProductName string          `json:"productName"`
	Produit     string          `json:"produit"`
	Quantity    int             `json:"quantite"`
	Price       decimal.Decimal `json:"prix"`
}

// ItemLabel etiqueta visible de la línea: productName si está presente,
// si no el campo histórico produit.
func (i OrderItem) ItemLabel() string {
	if i.ProductName != "" {
		return i.ProductName
	}
	return i.Produit
}
