package export_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maboutik/maboutik-web/internal/application/export"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

func sampleOrders() []entity.Order {
	return []entity.Order{
		{
			ID:           "c1",
			CustomerName: "Awa Diop",
			FirstName:    "Awa",
			LastName:     "Diop",
			Total:        decimal.NewFromInt(15000),
			Status:       entity.CommandeLivree,
			CreatedAt:    time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC),
			Items: []entity.OrderItem{
				{ProductName: "Savon de karité", Quantity: 2, Price: decimal.NewFromInt(2500)},
				{Produit: "Huile de baobab", Quantity: 1, Price: decimal.NewFromInt(10000)},
			},
		},
		{
			ID:        "c2",
			FirstName: "Moussa",
			LastName:  "Ndiaye",
			Total:     decimal.NewFromInt(8000),
			Status:    entity.CommandeEnAttente,
			CreatedAt: time.Date(2026, time.March, 6, 9, 0, 0, 0, time.UTC),
		},
	}
}

// Salida fijada byte a byte: cabecera + una fila por commande, las dos
// familias de campos de cliente, artículos como "etiqueta xCantidad".
func TestOrdersCSV_SortieStableOctetParOctet(t *testing.T) {
	got, err := export.OrdersCSV(sampleOrders())
	require.NoError(t, err)

	want := "id,customerName,first_name,last_name,date,total,statut,articles\n" +
		"c1,Awa Diop,Awa,Diop,2026-03-05,15000,livree,Savon de karité x2; Huile de baobab x1\n" +
		"c2,,Moussa,Ndiaye,2026-03-06,8000,en_attente,\n"
	assert.Equal(t, want, got)

	// Determinista: misma entrada, mismos bytes.
	again, err := export.OrdersCSV(sampleOrders())
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestOrdersCSV_ListeVide_SeulementEntete(t *testing.T) {
	got, err := export.OrdersCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "id,customerName,first_name,last_name,date,total,statut,articles\n", got)
}

// Los valores con comas o comillas quedan escapados según RFC 4180.
func TestOrdersCSV_EchappementVirgules(t *testing.T) {
	orders := []entity.Order{{
		ID:           "c3",
		CustomerName: "Diallo, Fatou",
		Total:        decimal.NewFromInt(100),
		Status:       entity.CommandeConfirmee,
		CreatedAt:    time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	}}
	got, err := export.OrdersCSV(orders)
	require.NoError(t, err)
	assert.Contains(t, got, `"Diallo, Fatou"`)
}
