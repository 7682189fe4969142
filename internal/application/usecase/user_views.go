package usecase

import (
	"context"
	"time"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/application/form"
	"github.com/maboutik/maboutik-web/internal/application/listing"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
)

var userRequired = []string{"email", "role"}

// UserViews gestión de cuentas desde la consola admin (server-driven).
type UserViews struct {
	users    repository.UserRepository
	pageSize int
}

// NewUserViews construye las vistas de usuarios.
func NewUserViews(users repository.UserRepository, pageSize int) *UserViews {
	return &UserViews{users: users, pageSize: pageSize}
}

// List listado paginado por el backend.
func (v *UserViews) List(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[entity.User], error) {
	ctrl := listing.NewController(listing.ModeServer, v.pageSize,
		listing.Fields[entity.User]{
			ID:   func(u entity.User) string { return u.ID },
			Text: func(u entity.User) []string { return []string{u.Email, u.FirstName, u.LastName} },
			Date: func(u entity.User) time.Time { return u.DateJoined },
		},
		func(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[entity.User], error) {
			return v.users.List(ctx, sess, p)
		})
	ctrl.ApplyParams(p)
	if err := ctrl.Load(ctx, sess); err != nil {
		return repository.Page[entity.User]{}, err
	}
	return repository.Page[entity.User]{Items: ctrl.VisibleRows(), Count: ctrl.Count()}, nil
}

// Delete elimina una cuenta.
func (v *UserViews) Delete(ctx context.Context, sess domain.Session, id string) error {
	return v.users.Delete(ctx, sess, id)
}

// NewForm formulario de alta/edición de cuenta.
func (v *UserViews) NewForm(existing *entity.User) *form.Controller[*entity.User] {
	f := form.NewController(userRequired, func(ctx context.Context, sess domain.Session, draft form.Draft) (*entity.User, error) {
		in := dto.UserInput{
			Email:     draft.Values["email"],
			FirstName: draft.Values["first_name"],
			LastName:  draft.Values["last_name"],
			Role:      draft.Values["role"],
			Password:  draft.Values["password"],
			Active:    draft.Values["is_active"] != "false",
		}
		if draft.ID == "" {
			return v.users.Create(ctx, sess, in)
		}
		return v.users.Update(ctx, sess, draft.ID, in)
	})

	if existing == nil {
		f.Open("", map[string]string{
			"email":      "",
			"first_name": "",
			"last_name":  "",
			"role":       domain.RoleMarchand,
			"password":   "",
			"is_active":  "true",
		})
		return f
	}

	active := "true"
	if !existing.Active {
		active = "false"
	}
	f.Open(existing.ID, map[string]string{
		"email":      existing.Email,
		"first_name": existing.FirstName,
		"last_name":  existing.LastName,
		"role":       existing.Role,
		"password":   "",
		"is_active":  active,
	})
	return f
}
