package repository

import (
	"context"

	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

// PaymentRepository acceso read-only a los paiements. List sin boutique sirve
// a la vista global de la consola admin.
type PaymentRepository interface {
	List(ctx context.Context, sess domain.Session, p ListParams) (Page[entity.Payment], error)
	ListByBoutique(ctx context.Context, sess domain.Session, boutiqueID string, p ListParams) (Page[entity.Payment], error)
	GetByID(ctx context.Context, sess domain.Session, id string) (*entity.Payment, error)
}
