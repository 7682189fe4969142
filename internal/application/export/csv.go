// Package export serializa las filas visibles de un listado a CSV.
// Transformación pura, síncrona y determinista: la misma entrada produce
// siempre los mismos bytes. Sin ida al backend.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

// Cabecera del export de commandes. Se emiten las dos familias de campos de
// cliente que expone el backend (customerName y first_name/last_name); los
// tests fijan la salida byte a byte.
var ordersHeader = []string{
	"id",
	"customerName",
	"first_name",
	"last_name",
	"date",
	"total",
	"statut",
	"articles",
}

// OrdersCSV serializa las commandes visibles: fila de cabecera más una fila
// por commande, en el orden recibido.
func OrdersCSV(orders []entity.Order) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ordersHeader); err != nil {
		return "", fmt.Errorf("export: cabecera: %w", err)
	}
	for _, o := range orders {
		row := []string{
			o.ID,
			o.CustomerName,
			o.FirstName,
			o.LastName,
			o.CreatedAt.Format("2006-01-02"),
			o.Total.String(),
			o.Status,
			itemsCell(o.Items),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("export: commande %s: %w", o.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("export: volcado: %w", err)
	}
	return buf.String(), nil
}

// itemsCell líneas de la commande en una celda: "etiqueta xCantidad"
// separadas por "; ". La etiqueta usa productName con fallback a produit.
func itemsCell(items []entity.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", it.ItemLabel(), it.Quantity))
	}
	return strings.Join(parts, "; ")
}
