package rest

import (
	"context"
	"net/http"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

// CategoryBoutiqueRepository implementa repository.CategoryBoutiqueRepository.
type CategoryBoutiqueRepository struct {
	c *Client
}

// NewCategoryBoutiqueRepository construye el repositorio.
func NewCategoryBoutiqueRepository(c *Client) *CategoryBoutiqueRepository {
	return &CategoryBoutiqueRepository{c: c}
}

// List devuelve todas las categorías de boutique (colección pequeña, sin paginar).
func (r *CategoryBoutiqueRepository) List(ctx context.Context, sess domain.Session) ([]entity.CategoryBoutique, error) {
	raw, err := r.c.Get(ctx, sess, "/api/categories-boutique/", nil)
	if err != nil {
		return nil, err
	}
	page, err := DecodeList[entity.CategoryBoutique](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// Create crea una categoría de boutique.
func (r *CategoryBoutiqueRepository) Create(ctx context.Context, sess domain.Session, in dto.CategoryInput) (*entity.CategoryBoutique, error) {
	raw, err := r.c.SendJSON(ctx, sess, http.MethodPost, "/api/categories-boutique/", categoryPayload(in))
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.CategoryBoutique](raw)
}

// Update actualiza una categoría de boutique.
func (r *CategoryBoutiqueRepository) Update(ctx context.Context, sess domain.Session, id string, in dto.CategoryInput) (*entity.CategoryBoutique, error) {
	raw, err := r.c.SendJSON(ctx, sess, http.MethodPut, "/api/categories-boutique/"+id+"/", categoryPayload(in))
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.CategoryBoutique](raw)
}

// Delete elimina una categoría de boutique.
func (r *CategoryBoutiqueRepository) Delete(ctx context.Context, sess domain.Session, id string) error {
	return r.c.Delete(ctx, sess, "/api/categories-boutique/"+id+"/")
}

// CategoryProduitRepository implementa repository.CategoryProduitRepository.
type CategoryProduitRepository struct {
	c *Client
}

// NewCategoryProduitRepository construye el repositorio.
func NewCategoryProduitRepository(c *Client) *CategoryProduitRepository {
	return &CategoryProduitRepository{c: c}
}

// ListByBoutique devuelve las categorías de producto de una boutique.
func (r *CategoryProduitRepository) ListByBoutique(ctx context.Context, sess domain.Session, boutiqueID string) ([]entity.CategoryProduit, error) {
	raw, err := r.c.Get(ctx, sess, "/api/boutiques/"+boutiqueID+"/categories/", nil)
	if err != nil {
		return nil, err
	}
	page, err := DecodeList[entity.CategoryProduit](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// Create crea una categoría de producto en la boutique.
func (r *CategoryProduitRepository) Create(ctx context.Context, sess domain.Session, boutiqueID string, in dto.CategoryInput) (*entity.CategoryProduit, error) {
	raw, err := r.c.SendJSON(ctx, sess, http.MethodPost, "/api/boutiques/"+boutiqueID+"/categories/", categoryPayload(in))
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.CategoryProduit](raw)
}

// Update actualiza una categoría de producto.
func (r *CategoryProduitRepository) Update(ctx context.Context, sess domain.Session, id string, in dto.CategoryInput) (*entity.CategoryProduit, error) {
	raw, err := r.c.SendJSON(ctx, sess, http.MethodPut, "/api/categories-produit/"+id+"/", categoryPayload(in))
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.CategoryProduit](raw)
}

// Delete elimina una categoría de producto.
func (r *CategoryProduitRepository) Delete(ctx context.Context, sess domain.Session, id string) error {
	return r.c.Delete(ctx, sess, "/api/categories-produit/"+id+"/")
}

func categoryPayload(in dto.CategoryInput) map[string]string {
	return map[string]string{
		"nom":         in.Name,
		"description": in.Description,
	}
}
