package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/application/export"
	"github.com/maboutik/maboutik-web/internal/application/listing"
	"github.com/maboutik/maboutik-web/internal/application/presenter"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
	"github.com/maboutik/maboutik-web/pkg/logger"
)

// ReceiptGenerator genera el PDF del reçu de una commande.
// Implementado en infrastructure/pdf con Maroto.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, boutique *entity.Boutique, order *entity.Order) ([]byte, error)
}

// OrderViews pantallas de commandes del dashboard de boutique: listado
// client-driven con filtros conjuntivos, cambio de estado y borrado in situ,
// export CSV de las filas visibles y reçu PDF por commande.
type OrderViews struct {
	orders    repository.OrderRepository
	boutiques repository.BoutiqueRepository
	receipts  ReceiptGenerator
	pageSize  int
	log       *logger.Logger
}

// NewOrderViews construye las vistas de commandes.
func NewOrderViews(orders repository.OrderRepository, boutiques repository.BoutiqueRepository, receipts ReceiptGenerator, pageSize int, log *logger.Logger) *OrderViews {
	return &OrderViews{orders: orders, boutiques: boutiques, receipts: receipts, pageSize: pageSize, log: log}
}

// orderFields la búsqueda libre cubre id y las dos formas del nombre de
// cliente que expone el backend.
func orderFields() listing.Fields[entity.Order] {
	return listing.Fields[entity.Order]{
		ID: func(o entity.Order) string { return o.ID },
		Text: func(o entity.Order) []string {
			return []string{o.ID, o.CustomerName, o.FirstName + " " + o.LastName}
		},
		Status: func(o entity.Order) string { return o.Status },
		Date:   func(o entity.Order) time.Time { return o.CreatedAt },
		Amount: func(o entity.Order) decimal.Decimal { return o.Total },
	}
}

// NewList controlador del listado de commandes de la boutique.
func (v *OrderViews) NewList(boutiqueID string) *listing.Controller[entity.Order] {
	return listing.NewController(listing.ModeClient, v.pageSize, orderFields(),
		func(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[entity.Order], error) {
			return v.orders.ListByBoutique(ctx, sess, boutiqueID, p)
		})
}

// List carga y proyecta el listado con los parámetros de la vista.
func (v *OrderViews) List(ctx context.Context, sess domain.Session, boutiqueID string, p repository.ListParams) (*dto.OrderListResponse, error) {
	ctrl := v.NewList(boutiqueID)
	ctrl.ApplyParams(p)
	if err := ctrl.Load(ctx, sess); err != nil {
		return nil, err
	}
	rows := ctrl.VisibleRows()
	items := make([]dto.OrderResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toOrderResponse(row))
	}
	return &dto.OrderListResponse{
		Items: items,
		Meta:  dto.ListMeta{Page: ctrl.Params().Page, PageSize: v.pageSize, Count: ctrl.Count()},
	}, nil
}

// GetByID detalle de una commande.
func (v *OrderViews) GetByID(ctx context.Context, sess domain.Session, id string) (*dto.OrderResponse, error) {
	o, err := v.orders.GetByID(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(*o)
	return &out, nil
}

// UpdateStatus cambia el estado de la commande. La fila devuelta reemplaza a
// la antigua en el listado sin re-fetch completo.
func (v *OrderViews) UpdateStatus(ctx context.Context, sess domain.Session, id, status string) (*dto.OrderResponse, error) {
	o, err := v.orders.UpdateStatus(ctx, sess, id, status)
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(*o)
	return &out, nil
}

// Delete elimina una commande.
func (v *OrderViews) Delete(ctx context.Context, sess domain.Session, id string) error {
	return v.orders.Delete(ctx, sess, id)
}

// ExportCSV serializa a CSV las filas visibles con los filtros actuales de la
// vista (sin paginar: el export cubre todo lo filtrado, no solo la página).
func (v *OrderViews) ExportCSV(ctx context.Context, sess domain.Session, boutiqueID string, p repository.ListParams) (string, error) {
	p.Page = 1
	ctrl := listing.NewController(listing.ModeClient, 1<<30, orderFields(),
		func(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[entity.Order], error) {
			return v.orders.ListByBoutique(ctx, sess, boutiqueID, p)
		})
	ctrl.ApplyParams(p)
	if err := ctrl.Load(ctx, sess); err != nil {
		return "", err
	}
	return export.OrdersCSV(ctrl.VisibleRows())
}

// Receipt genera el reçu PDF de la commande con los datos de la boutique.
func (v *OrderViews) Receipt(ctx context.Context, sess domain.Session, boutiqueID, orderID string) ([]byte, error) {
	boutique, err := v.boutiques.GetByID(ctx, sess, boutiqueID)
	if err != nil {
		return nil, err
	}
	order, err := v.orders.GetByID(ctx, sess, orderID)
	if err != nil {
		return nil, err
	}
	return v.receipts.GenerateReceipt(ctx, boutique, order)
}

func toOrderResponse(o entity.Order) dto.OrderResponse {
	badge := presenter.OrderBadge(o.Status)
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductName: it.ProductName,
			Produit:     it.Produit,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return dto.OrderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		FirstName:    o.FirstName,
		LastName:     o.LastName,
		Phone:        o.Phone,
		Address:      o.Address,
		Total:        o.Total,
		TotalLabel:   presenter.FCFA(o.Total),
		Status:       o.Status,
		BadgeLabel:   badge.Label,
		BadgeColor:   badge.Color,
		Items:        items,
		CreatedAt:    o.CreatedAt,
	}
}
