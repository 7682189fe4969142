// Package pdf genera el reçu PDF de una commande con Maroto v2.
//
// Layout A4:
//
//	┌────────────────────────────────────────────────────────┐
//	│  HEADER: Nom de la boutique   │  N° commande + date    │
//	│  ────────────────────────────────────────────────────  │
//	│  CLIENT: nom + téléphone + adresse de livraison        │
//	│  ────────────────────────────────────────────────────  │
//	│  TABLE: Qté | Article | Prix unitaire | Sous-total     │
//	│  ────────────────────────────────────────────────────  │
//	│  TOTAL À PAYER (FCFA)                                  │
//	└────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/maboutik/maboutik-web/internal/application/presenter"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 95}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa usecase.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceipt genera el reçu y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(_ context.Context, boutique *entity.Boutique, order *entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reçu de commande", true).
		WithAuthor(boutique.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(boutique, order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer le reçu: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la boutique (izq), número y fecha de commande (der).
func headerRow(boutique *entity.Boutique, order *entity.Order) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(boutique.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(boutique.Phone, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("REÇU DE COMMANDE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+order.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(order.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: nombre del cliente en su forma principal con fallback a la
// forma histórica first_name/last_name.
func clientRow(order *entity.Order) core.Row {
	name := order.CustomerName
	if name == "" {
		name = order.FirstName + " " + order.LastName
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("Client: "+name, props.Text{Size: 9, Top: 1}),
			text.New("Téléphone: "+order.Phone, props.Text{Size: 9, Top: 5, Color: colorGray}),
			text.New("Adresse: "+order.Address, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	boldRight := bold
	boldRight.Align = align.Right
	return row.New(7).Add(
		col.New(1).Add(text.New("Qté", bold)),
		col.New(7).Add(text.New("Article", bold)),
		col.New(2).Add(text.New("Prix unit.", boldRight)),
		col.New(2).Add(text.New("Sous-total", boldRight)),
	)
}

func tableItemRows(items []entity.OrderItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		subtotal := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		right := props.Text{Size: 9, Align: align.Right}
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 9})),
			col.New(7).Add(text.New(it.ItemLabel(), props.Text{Size: 9})),
			col.New(2).Add(text.New(presenter.FCFA(it.Price), right)),
			col.New(2).Add(text.New(presenter.FCFA(subtotal), right)),
		))
	}
	return rows
}

func totalRow(order *entity.Order) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(4).Add(
			text.New("TOTAL À PAYER", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(presenter.FCFA(order.Total), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 5,
			}),
		),
	)
}
