// Package dashboard contiene el caso de uso de la vista de agregados del
// dashboard de boutique. No calcula nada: consume los agregados precalculados
// del backend y los deja listos para mostrar.
package dashboard

import (
	"context"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/application/presenter"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
	"github.com/maboutik/maboutik-web/pkg/logger"
)

// MonthlyPoints longitud fija de la serie mensual.
const MonthlyPoints = 12

// UseCase construye la respuesta del dashboard a partir del StatsRepository.
type UseCase struct {
	repo repository.StatsRepository
	log  *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.StatsRepository, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, log: log}
}

// Summary lanza las tres consultas de agregados en paralelo y espera las tres.
//
// Cada tarjeta falla por su cuenta: un endpoint caído marca solo su tarjeta
// con error y las otras dos se muestran con normalidad. Los fallos no se
// correlacionan ni se cancelan entre sí.
func (uc *UseCase) Summary(ctx context.Context, sess domain.Session, boutiqueID string) dto.DashboardResponse {
	type totalsResult struct {
		stats entity.BoutiqueStats
		err   error
	}
	type monthlyResult struct {
		points []entity.MonthlyPoint
		err    error
	}
	type sharesResult struct {
		shares []entity.CategoryShare
		err    error
	}

	totalsCh := make(chan totalsResult, 1)
	monthlyCh := make(chan monthlyResult, 1)
	sharesCh := make(chan sharesResult, 1)

	go func() {
		stats, err := uc.repo.GetTotals(ctx, sess, boutiqueID)
		totalsCh <- totalsResult{stats, err}
	}()
	go func() {
		points, err := uc.repo.GetMonthlySeries(ctx, sess, boutiqueID)
		monthlyCh <- monthlyResult{points, err}
	}()
	go func() {
		shares, err := uc.repo.GetCategoryShares(ctx, sess, boutiqueID)
		sharesCh <- sharesResult{shares, err}
	}()

	totals := <-totalsCh
	monthly := <-monthlyCh
	shares := <-sharesCh

	var out dto.DashboardResponse

	if totals.err != nil {
		uc.log.Warn().Err(totals.err).Str("boutique", boutiqueID).Msg("tarjeta de totales caída")
		out.Totals.Error = "totaux indisponibles"
	} else {
		out.Totals.Data = dto.DashboardTotals{
			TotalSales:      totals.stats.TotalSales,
			TotalSalesLabel: presenter.FCFA(totals.stats.TotalSales),
			OrderCount:      totals.stats.OrderCount,
			ProductCount:    totals.stats.ProductCount,
			CustomerCount:   totals.stats.CustomerCount,
		}
	}

	if monthly.err != nil {
		uc.log.Warn().Err(monthly.err).Str("boutique", boutiqueID).Msg("tarjeta mensual caída")
		out.Monthly.Error = "série mensuelle indisponible"
	} else {
		points := make([]dto.DashboardMonthlyPoint, 0, MonthlyPoints)
		for _, p := range monthly.points {
			points = append(points, dto.DashboardMonthlyPoint{Month: p.Month, Total: p.Total})
		}
		out.Monthly.Data = points
	}

	if shares.err != nil {
		uc.log.Warn().Err(shares.err).Str("boutique", boutiqueID).Msg("tarjeta de categorías caída")
		out.Categories.Error = "répartition par catégorie indisponible"
	} else {
		parts := make([]dto.DashboardCategoryShare, 0, len(shares.shares))
		for _, s := range shares.shares {
			parts = append(parts, dto.DashboardCategoryShare{
				Category:     s.Category,
				Total:        s.Total,
				Percent:      s.Percent,
				PercentLabel: presenter.Percent(s.Percent),
			})
		}
		out.Categories.Data = parts
	}

	return out
}
