package presenter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maboutik/maboutik-web/internal/application/presenter"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

func TestOrderBadge_Mapping(t *testing.T) {
	cases := []struct {
		status string
		label  string
		color  string
	}{
		{entity.CommandeEnAttente, "En attente", "warning"},
		{entity.CommandeConfirmee, "Confirmée", "info"},
		{entity.CommandeExpediee, "Expédiée", "primary"},
		{entity.CommandeLivree, "Livrée", "success"},
		{entity.CommandeAnnulee, "Annulée", "danger"},
	}
	for _, tc := range cases {
		b := presenter.OrderBadge(tc.status)
		assert.Equal(t, tc.label, b.Label, tc.status)
		assert.Equal(t, tc.color, b.Color, tc.status)
	}
}

// Un estado desconocido del backend no rompe la vista: badge neutro.
func TestBadges_StatutInconnuTombeSurNeutre(t *testing.T) {
	for _, b := range []presenter.Badge{
		presenter.OrderBadge("statut_marsien"),
		presenter.ProductBadge(""),
		presenter.BoutiqueBadge("n/a"),
		presenter.PaymentBadge("???"),
	} {
		assert.Equal(t, "Inconnu", b.Label)
		assert.Equal(t, "secondary", b.Color)
	}
}

func TestProductBadge_Mapping(t *testing.T) {
	assert.Equal(t, presenter.Badge{Label: "Actif", Color: "success"}, presenter.ProductBadge(entity.ProduitActif))
	assert.Equal(t, presenter.Badge{Label: "Rupture de stock", Color: "danger"}, presenter.ProductBadge(entity.ProduitRupture))
}

func TestPaymentBadge_Mapping(t *testing.T) {
	assert.Equal(t, presenter.Badge{Label: "Réussi", Color: "success"}, presenter.PaymentBadge(entity.PaiementReussi))
	assert.Equal(t, presenter.Badge{Label: "Remboursé", Color: "info"}, presenter.PaymentBadge(entity.PaiementRembourse))
}

func TestBoutiqueBadge_Mapping(t *testing.T) {
	assert.Equal(t, presenter.Badge{Label: "Active", Color: "success"}, presenter.BoutiqueBadge(entity.BoutiqueActive))
	assert.Equal(t, presenter.Badge{Label: "Suspendue", Color: "danger"}, presenter.BoutiqueBadge(entity.BoutiqueSuspendue))
}
