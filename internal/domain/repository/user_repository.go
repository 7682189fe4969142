package repository

import (
	"context"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

// UserRepository cuentas gestionadas desde la consola admin.
type UserRepository interface {
	List(ctx context.Context, sess domain.Session, p ListParams) (Page[entity.User], error)
	GetByID(ctx context.Context, sess domain.Session, id string) (*entity.User, error)
	Create(ctx context.Context, sess domain.Session, in dto.UserInput) (*entity.User, error)
	Update(ctx context.Context, sess domain.Session, id string, in dto.UserInput) (*entity.User, error)
	Delete(ctx context.Context, sess domain.Session, id string) error
}
