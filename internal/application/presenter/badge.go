// Package presenter agrupa las transformaciones puras de presentación:
// estado -> badge y formateo de unidades de display (FCFA, porcentajes).
// Sin estado ni efectos.
package presenter

import "github.com/maboutik/maboutik-web/internal/domain/entity"

// Badge etiqueta y clase de color de un estado.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Los estados no reconocidos caen en un badge neutro en vez de fallar.
var neutral = Badge{Label: "Inconnu", Color: "secondary"}

// OrderBadge badge de un estado de commande.
func OrderBadge(status string) Badge {
	switch status {
	case entity.CommandeEnAttente:
		return Badge{Label: "En attente", Color: "warning"}
	case entity.CommandeConfirmee:
		return Badge{Label: "Confirmée", Color: "info"}
	case entity.CommandeExpediee:
		return Badge{Label: "Expédiée", Color: "primary"}
	case entity.CommandeLivree:
		return Badge{Label: "Livrée", Color: "success"}
	case entity.CommandeAnnulee:
		return Badge{Label: "Annulée", Color: "danger"}
	default:
		return neutral
	}
}

// ProductBadge badge de un estado de produit.
func ProductBadge(status string) Badge {
	switch status {
	case entity.ProduitActif:
		return Badge{Label: "Actif", Color: "success"}
	case entity.ProduitInactif:
		return Badge{Label: "Inactif", Color: "secondary"}
	case entity.ProduitRupture:
		return Badge{Label: "Rupture de stock", Color: "danger"}
	default:
		return neutral
	}
}

// BoutiqueBadge badge de un estado de boutique.
func BoutiqueBadge(status string) Badge {
	switch status {
	case entity.BoutiqueActive:
		return Badge{Label: "Active", Color: "success"}
	case entity.BoutiqueEnAttente:
		return Badge{Label: "En attente", Color: "warning"}
	case entity.BoutiqueSuspendue:
		return Badge{Label: "Suspendue", Color: "danger"}
	default:
		return neutral
	}
}

// PaymentBadge badge de un estado de paiement.
func PaymentBadge(status string) Badge {
	switch status {
	case entity.PaiementReussi:
		return Badge{Label: "Réussi", Color: "success"}
	case entity.PaiementEnAttente:
		return Badge{Label: "En attente", Color: "warning"}
	case entity.PaiementEchoue:
		return Badge{Label: "Échoué", Color: "danger"}
	case entity.PaiementRembourse:
		return Badge{Label: "Remboursé", Color: "info"}
	default:
		return neutral
	}
}
