package rest

import (
	"context"
	"net/http"

	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
)

// OrderRepository implementa repository.OrderRepository sobre el backend.
type OrderRepository struct {
	c *Client
}

// NewOrderRepository construye el repositorio.
func NewOrderRepository(c *Client) *OrderRepository {
	return &OrderRepository{c: c}
}

// ListByBoutique lista las commandes de una boutique. La vista de commandes
// es client-driven: pide la colección completa y filtra en memoria, así que
// normalmente p llega vacío.
func (r *OrderRepository) ListByBoutique(ctx context.Context, sess domain.Session, boutiqueID string, p repository.ListParams) (repository.Page[entity.Order], error) {
	raw, err := r.c.Get(ctx, sess, "/api/boutiques/"+boutiqueID+"/commandes/", queryParams(p))
	if err != nil {
		return repository.Page[entity.Order]{}, err
	}
	return DecodeList[entity.Order](raw)
}

// GetByID obtiene una commande con sus líneas.
func (r *OrderRepository) GetByID(ctx context.Context, sess domain.Session, id string) (*entity.Order, error) {
	raw, err := r.c.Get(ctx, sess, "/api/commandes/"+id+"/", nil)
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.Order](raw)
}

// UpdateStatus cambia el estado de la commande (confirmación, expedición...).
func (r *OrderRepository) UpdateStatus(ctx context.Context, sess domain.Session, id, status string) (*entity.Order, error) {
	raw, err := r.c.SendJSON(ctx, sess, http.MethodPatch, "/api/commandes/"+id+"/", map[string]string{"statut": status})
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.Order](raw)
}

// Delete elimina una commande.
func (r *OrderRepository) Delete(ctx context.Context, sess domain.Session, id string) error {
	return r.c.Delete(ctx, sess, "/api/commandes/"+id+"/")
}
