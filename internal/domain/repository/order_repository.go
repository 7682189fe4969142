package repository

import (
	"context"

	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

// OrderRepository acceso a las commandes de una boutique. Las commandes se
// crean desde el checkout del storefront; el dashboard solo las consulta,
// cambia su estado o las elimina.
type OrderRepository interface {
	ListByBoutique(ctx context.Context, sess domain.Session, boutiqueID string, p ListParams) (Page[entity.Order], error)
	GetByID(ctx context.Context, sess domain.Session, id string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, sess domain.Session, id, status string) (*entity.Order, error)
	Delete(ctx context.Context, sess domain.Session, id string) error
}
