package repository

import (
	"context"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

// ProductRepository acceso a los productos de una boutique.
// Las mutaciones exigen sesión de marchand; ListByBoutique acepta sesión
// anónima para la página pública de la boutique.
type ProductRepository interface {
	ListByBoutique(ctx context.Context, sess domain.Session, boutiqueID string, p ListParams) (Page[entity.Product], error)
	GetByID(ctx context.Context, sess domain.Session, id string) (*entity.Product, error)
	Create(ctx context.Context, sess domain.Session, boutiqueID string, in dto.ProduitInput) (*entity.Product, error)
	Update(ctx context.Context, sess domain.Session, id string, in dto.ProduitInput) (*entity.Product, error)
	UpdateStatus(ctx context.Context, sess domain.Session, id, status string) (*entity.Product, error)
	Delete(ctx context.Context, sess domain.Session, id string) error
}
