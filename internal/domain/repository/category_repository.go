package repository

import (
	"context"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

// CategoryBoutiqueRepository categorías de primer nivel de boutiques
// (gestionadas desde la consola admin, leídas por el storefront).
type CategoryBoutiqueRepository interface {
	List(ctx context.Context, sess domain.Session) ([]entity.CategoryBoutique, error)
	Create(ctx context.Context, sess domain.Session, in dto.CategoryInput) (*entity.CategoryBoutique, error)
	Update(ctx context.Context, sess domain.Session, id string, in dto.CategoryInput) (*entity.CategoryBoutique, error)
	Delete(ctx context.Context, sess domain.Session, id string) error
}

// CategoryProduitRepository categorías de productos dentro de una boutique
// (gestionadas por el marchand).
type CategoryProduitRepository interface {
	ListByBoutique(ctx context.Context, sess domain.Session, boutiqueID string) ([]entity.CategoryProduit, error)
	Create(ctx context.Context, sess domain.Session, boutiqueID string, in dto.CategoryInput) (*entity.CategoryProduit, error)
	Update(ctx context.Context, sess domain.Session, id string, in dto.CategoryInput) (*entity.CategoryProduit, error)
	Delete(ctx context.Context, sess domain.Session, id string) error
}
