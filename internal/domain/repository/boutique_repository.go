package repository

import (
	"context"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

// BoutiqueRepository acceso a las boutiques del marketplace.
// List sirve tanto al directorio público (sesión anónima) como a la consola
// admin (filtros de estado y búsqueda).
type BoutiqueRepository interface {
	List(ctx context.Context, sess domain.Session, p ListParams) (Page[entity.Boutique], error)
	GetByID(ctx context.Context, sess domain.Session, id string) (*entity.Boutique, error)
	Create(ctx context.Context, sess domain.Session, in dto.BoutiqueInput) (*entity.Boutique, error)
	Update(ctx context.Context, sess domain.Session, id string, in dto.BoutiqueInput) (*entity.Boutique, error)
	UpdateStatus(ctx context.Context, sess domain.Session, id, status string) (*entity.Boutique, error)
	Delete(ctx context.Context, sess domain.Session, id string) error
}
