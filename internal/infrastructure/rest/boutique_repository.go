package rest

import (
	"context"
	"net/http"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
)

// BoutiqueRepository implementa repository.BoutiqueRepository sobre el backend.
type BoutiqueRepository struct {
	c *Client
}

// NewBoutiqueRepository construye el repositorio.
func NewBoutiqueRepository(c *Client) *BoutiqueRepository {
	return &BoutiqueRepository{c: c}
}

// List lista boutiques (directorio público o consola admin según la sesión).
func (r *BoutiqueRepository) List(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[entity.Boutique], error) {
	raw, err := r.c.Get(ctx, sess, "/api/boutiques/", queryParams(p))
	if err != nil {
		return repository.Page[entity.Boutique]{}, err
	}
	return DecodeList[entity.Boutique](raw)
}

// GetByID obtiene una boutique.
func (r *BoutiqueRepository) GetByID(ctx context.Context, sess domain.Session, id string) (*entity.Boutique, error) {
	raw, err := r.c.Get(ctx, sess, "/api/boutiques/"+id+"/", nil)
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.Boutique](raw)
}

// Create crea una boutique.
func (r *BoutiqueRepository) Create(ctx context.Context, sess domain.Session, in dto.BoutiqueInput) (*entity.Boutique, error) {
	raw, err := r.send(ctx, sess, http.MethodPost, "/api/boutiques/", in)
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.Boutique](raw)
}

// Update actualiza una boutique existente.
func (r *BoutiqueRepository) Update(ctx context.Context, sess domain.Session, id string, in dto.BoutiqueInput) (*entity.Boutique, error) {
	raw, err := r.send(ctx, sess, http.MethodPut, "/api/boutiques/"+id+"/", in)
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.Boutique](raw)
}

// UpdateStatus cambia solo el estado de la boutique (activación, suspensión).
func (r *BoutiqueRepository) UpdateStatus(ctx context.Context, sess domain.Session, id, status string) (*entity.Boutique, error) {
	raw, err := r.c.SendJSON(ctx, sess, http.MethodPatch, "/api/boutiques/"+id+"/", map[string]string{"statut": status})
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.Boutique](raw)
}

// Delete elimina una boutique.
func (r *BoutiqueRepository) Delete(ctx context.Context, sess domain.Session, id string) error {
	return r.c.Delete(ctx, sess, "/api/boutiques/"+id+"/")
}

func (r *BoutiqueRepository) send(ctx context.Context, sess domain.Session, method, path string, in dto.BoutiqueInput) ([]byte, error) {
	if in.Image != nil {
		fields := map[string]string{
			"nom":         in.Name,
			"description": in.Description,
			"categorie":   in.CategoryID,
			"telephone":   in.Phone,
			"adresse":     in.Address,
			"statut":      in.Status,
		}
		return r.c.SendForm(ctx, sess, method, path, fields, in.Image)
	}
	payload := map[string]any{
		"nom":         in.Name,
		"description": in.Description,
		"categorie":   in.CategoryID,
		"telephone":   in.Phone,
		"adresse":     in.Address,
		"statut":      in.Status,
	}
	return r.c.SendJSON(ctx, sess, method, path, payload)
}
