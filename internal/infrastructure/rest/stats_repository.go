package rest

import (
	"context"

	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

// StatsRepository implementa repository.StatsRepository.
// Tres endpoints read-only con agregados precalculados por el backend.
type StatsRepository struct {
	c *Client
}

// NewStatsRepository construye el repositorio.
func NewStatsRepository(c *Client) *StatsRepository {
	return &StatsRepository{c: c}
}

// GetTotals totales de la boutique (ventas, commandes, produits, clients).
func (r *StatsRepository) GetTotals(ctx context.Context, sess domain.Session, boutiqueID string) (entity.BoutiqueStats, error) {
	raw, err := r.c.Get(ctx, sess, "/api/boutiques/"+boutiqueID+"/stats/totaux/", nil)
	if err != nil {
		return entity.BoutiqueStats{}, err
	}
	out, err := DecodeOne[entity.BoutiqueStats](raw)
	if err != nil {
		return entity.BoutiqueStats{}, err
	}
	return *out, nil
}

// GetMonthlySeries serie mensual de ventas (12 puntos).
func (r *StatsRepository) GetMonthlySeries(ctx context.Context, sess domain.Session, boutiqueID string) ([]entity.MonthlyPoint, error) {
	raw, err := r.c.Get(ctx, sess, "/api/boutiques/"+boutiqueID+"/stats/mensuel/", nil)
	if err != nil {
		return nil, err
	}
	page, err := DecodeList[entity.MonthlyPoint](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// GetCategoryShares reparto de ventas por categoría de producto.
func (r *StatsRepository) GetCategoryShares(ctx context.Context, sess domain.Session, boutiqueID string) ([]entity.CategoryShare, error) {
	raw, err := r.c.Get(ctx, sess, "/api/boutiques/"+boutiqueID+"/stats/categories/", nil)
	if err != nil {
		return nil, err
	}
	page, err := DecodeList[entity.CategoryShare](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}
