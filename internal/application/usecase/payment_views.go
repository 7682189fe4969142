package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/application/listing"
	"github.com/maboutik/maboutik-web/internal/application/presenter"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
	"github.com/maboutik/maboutik-web/pkg/logger"
)

// PaymentViews listados read-only de paiements: por boutique (dashboard del
// marchand, client-driven) y global (consola admin, server-driven).
type PaymentViews struct {
	payments repository.PaymentRepository
	pageSize int
	log      *logger.Logger
}

// NewPaymentViews construye las vistas de paiements.
func NewPaymentViews(payments repository.PaymentRepository, pageSize int, log *logger.Logger) *PaymentViews {
	return &PaymentViews{payments: payments, pageSize: pageSize, log: log}
}

func paymentFields() listing.Fields[entity.Payment] {
	return listing.Fields[entity.Payment]{
		ID:     func(p entity.Payment) string { return p.ID },
		Text:   func(p entity.Payment) []string { return []string{p.ID, p.OrderID, p.Reference} },
		Status: func(p entity.Payment) string { return p.Status },
		Date:   func(p entity.Payment) time.Time { return p.CreatedAt },
		Amount: func(p entity.Payment) decimal.Decimal { return p.Amount },
	}
}

// ListByBoutique paiements de la boutique con filtros en memoria.
func (v *PaymentViews) ListByBoutique(ctx context.Context, sess domain.Session, boutiqueID string, p repository.ListParams) (*dto.PaymentListResponse, error) {
	ctrl := listing.NewController(listing.ModeClient, v.pageSize, paymentFields(),
		func(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[entity.Payment], error) {
			return v.payments.ListByBoutique(ctx, sess, boutiqueID, p)
		})
	return v.project(ctx, sess, ctrl, p)
}

// ListAll vista global de la consola admin, paginada por el backend.
func (v *PaymentViews) ListAll(ctx context.Context, sess domain.Session, p repository.ListParams) (*dto.PaymentListResponse, error) {
	ctrl := listing.NewController(listing.ModeServer, v.pageSize, paymentFields(),
		func(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[entity.Payment], error) {
			return v.payments.List(ctx, sess, p)
		})
	return v.project(ctx, sess, ctrl, p)
}

func (v *PaymentViews) project(ctx context.Context, sess domain.Session, ctrl *listing.Controller[entity.Payment], p repository.ListParams) (*dto.PaymentListResponse, error) {
	ctrl.ApplyParams(p)
	if err := ctrl.Load(ctx, sess); err != nil {
		return nil, err
	}
	rows := ctrl.VisibleRows()
	items := make([]dto.PaymentResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toPaymentResponse(row))
	}
	return &dto.PaymentListResponse{
		Items: items,
		Meta:  dto.ListMeta{Page: ctrl.Params().Page, PageSize: v.pageSize, Count: ctrl.Count()},
	}, nil
}

func toPaymentResponse(p entity.Payment) dto.PaymentResponse {
	badge := presenter.PaymentBadge(p.Status)
	return dto.PaymentResponse{
		ID:          p.ID,
		OrderID:     p.OrderID,
		BoutiqueID:  p.BoutiqueID,
		Amount:      p.Amount,
		AmountLabel: presenter.FCFA(p.Amount),
		Method:      p.Method,
		Reference:   p.Reference,
		Status:      p.Status,
		BadgeLabel:  badge.Label,
		BadgeColor:  badge.Color,
		CreatedAt:   p.CreatedAt,
	}
}
