package rest

import (
	"context"

	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
)

// PaymentRepository implementa repository.PaymentRepository (read-only).
type PaymentRepository struct {
	c *Client
}

// NewPaymentRepository construye el repositorio.
func NewPaymentRepository(c *Client) *PaymentRepository {
	return &PaymentRepository{c: c}
}

// List lista todos los paiements (consola admin, server-driven).
func (r *PaymentRepository) List(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[entity.Payment], error) {
	raw, err := r.c.Get(ctx, sess, "/api/paiements/", queryParams(p))
	if err != nil {
		return repository.Page[entity.Payment]{}, err
	}
	return DecodeList[entity.Payment](raw)
}

// ListByBoutique lista los paiements de una boutique.
func (r *PaymentRepository) ListByBoutique(ctx context.Context, sess domain.Session, boutiqueID string, p repository.ListParams) (repository.Page[entity.Payment], error) {
	raw, err := r.c.Get(ctx, sess, "/api/boutiques/"+boutiqueID+"/paiements/", queryParams(p))
	if err != nil {
		return repository.Page[entity.Payment]{}, err
	}
	return DecodeList[entity.Payment](raw)
}

// GetByID obtiene un paiement.
func (r *PaymentRepository) GetByID(ctx context.Context, sess domain.Session, id string) (*entity.Payment, error) {
	raw, err := r.c.Get(ctx, sess, "/api/paiements/"+id+"/", nil)
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.Payment](raw)
}
