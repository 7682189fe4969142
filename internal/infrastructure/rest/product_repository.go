package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
)

// ProductRepository implementa repository.ProductRepository sobre el backend.
type ProductRepository struct {
	c *Client
}

// NewProductRepository construye el repositorio.
func NewProductRepository(c *Client) *ProductRepository {
	return &ProductRepository{c: c}
}

// ListByBoutique lista los productos de una boutique.
func (r *ProductRepository) ListByBoutique(ctx context.Context, sess domain.Session, boutiqueID string, p repository.ListParams) (repository.Page[entity.Product], error) {
	raw, err := r.c.Get(ctx, sess, "/api/boutiques/"+boutiqueID+"/produits/", queryParams(p))
	if err != nil {
		return repository.Page[entity.Product]{}, err
	}
	return DecodeList[entity.Product](raw)
}

// GetByID obtiene un producto.
func (r *ProductRepository) GetByID(ctx context.Context, sess domain.Session, id string) (*entity.Product, error) {
	raw, err := r.c.Get(ctx, sess, "/api/produits/"+id+"/", nil)
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.Product](raw)
}

// Create crea un producto. Con imagen la petición sale como multipart.
func (r *ProductRepository) Create(ctx context.Context, sess domain.Session, boutiqueID string, in dto.ProduitInput) (*entity.Product, error) {
	path := "/api/boutiques/" + boutiqueID + "/produits/"
	raw, err := r.send(ctx, sess, http.MethodPost, path, in)
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.Product](raw)
}

// Update actualiza un producto existente.
func (r *ProductRepository) Update(ctx context.Context, sess domain.Session, id string, in dto.ProduitInput) (*entity.Product, error) {
	raw, err := r.send(ctx, sess, http.MethodPut, "/api/produits/"+id+"/", in)
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.Product](raw)
}

// UpdateStatus cambia solo el estado del producto.
func (r *ProductRepository) UpdateStatus(ctx context.Context, sess domain.Session, id, status string) (*entity.Product, error) {
	raw, err := r.c.SendJSON(ctx, sess, http.MethodPatch, "/api/produits/"+id+"/", map[string]string{"statut": status})
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.Product](raw)
}

// Delete elimina un producto.
func (r *ProductRepository) Delete(ctx context.Context, sess domain.Session, id string) error {
	return r.c.Delete(ctx, sess, "/api/produits/"+id+"/")
}

func (r *ProductRepository) send(ctx context.Context, sess domain.Session, method, path string, in dto.ProduitInput) ([]byte, error) {
	if in.Image != nil {
		return r.c.SendForm(ctx, sess, method, path, produitFields(in), in.Image)
	}
	return r.c.SendJSON(ctx, sess, method, path, produitPayload(in))
}

// produitPayload cuerpo JSON del borrador (sin imagen).
func produitPayload(in dto.ProduitInput) map[string]any {
	return map[string]any{
		"categorie":   in.CategoryID,
		"nom":         in.Name,
		"description": in.Description,
		"prix":        in.Price,
		"ancien_prix": in.OldPrice,
		"quantite":    in.Quantity,
		"statut":      in.Status,
	}
}

// produitFields campos escalares del borrador para multipart.
func produitFields(in dto.ProduitInput) map[string]string {
	return map[string]string{
		"categorie":   in.CategoryID,
		"nom":         in.Name,
		"description": in.Description,
		"prix":        in.Price.String(),
		"ancien_prix": in.OldPrice.String(),
		"quantite":    strconv.Itoa(in.Quantity),
		"statut":      in.Status,
	}
}
