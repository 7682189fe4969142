package rest

import (
	"context"
	"net/http"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
)

// UserRepository implementa repository.UserRepository (consola admin).
type UserRepository struct {
	c *Client
}

// NewUserRepository construye el repositorio.
func NewUserRepository(c *Client) *UserRepository {
	return &UserRepository{c: c}
}

// List lista las cuentas (server-driven).
func (r *UserRepository) List(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[entity.User], error) {
	raw, err := r.c.Get(ctx, sess, "/api/users/", queryParams(p))
	if err != nil {
		return repository.Page[entity.User]{}, err
	}
	return DecodeList[entity.User](raw)
}

// GetByID obtiene una cuenta.
func (r *UserRepository) GetByID(ctx context.Context, sess domain.Session, id string) (*entity.User, error) {
	raw, err := r.c.Get(ctx, sess, "/api/users/"+id+"/", nil)
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.User](raw)
}

// Create da de alta una cuenta.
func (r *UserRepository) Create(ctx context.Context, sess domain.Session, in dto.UserInput) (*entity.User, error) {
	raw, err := r.c.SendJSON(ctx, sess, http.MethodPost, "/api/users/", userPayload(in))
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.User](raw)
}

// Update modifica una cuenta.
func (r *UserRepository) Update(ctx context.Context, sess domain.Session, id string, in dto.UserInput) (*entity.User, error) {
	raw, err := r.c.SendJSON(ctx, sess, http.MethodPut, "/api/users/"+id+"/", userPayload(in))
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.User](raw)
}

// Delete elimina una cuenta.
func (r *UserRepository) Delete(ctx context.Context, sess domain.Session, id string) error {
	return r.c.Delete(ctx, sess, "/api/users/"+id+"/")
}

func userPayload(in dto.UserInput) map[string]any {
	payload := map[string]any{
		"email":      in.Email,
		"first_name": in.FirstName,
		"last_name":  in.LastName,
		"role":       in.Role,
		"is_active":  in.Active,
	}
	// Password vacío en update significa "sin cambio"; no se envía la clave.
	if in.Password != "" {
		payload["password"] = in.Password
	}
	return payload
}
