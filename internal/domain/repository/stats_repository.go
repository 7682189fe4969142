package repository

import (
	"context"

	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

// StatsRepository agregados precalculados por el backend para el dashboard.
// Tres endpoints independientes; el dashboard los consulta en paralelo y cada
// tarjeta falla por su cuenta.
type StatsRepository interface {
	GetTotals(ctx context.Context, sess domain.Session, boutiqueID string) (entity.BoutiqueStats, error)
	GetMonthlySeries(ctx context.Context, sess domain.Session, boutiqueID string) ([]entity.MonthlyPoint, error)
	GetCategoryShares(ctx context.Context, sess domain.Session, boutiqueID string) ([]entity.CategoryShare, error)
}
