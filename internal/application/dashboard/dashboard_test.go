package dashboard_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/maboutik/maboutik-web/internal/application/dashboard"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/pkg/logger"
)

// fakeStats repositorio de agregados con fallos configurables por tarjeta.
type fakeStats struct {
	totalsErr  error
	monthlyErr error
	sharesErr  error
}

func (f *fakeStats) GetTotals(ctx context.Context, sess domain.Session, boutiqueID string) (entity.BoutiqueStats, error) {
	if f.totalsErr != nil {
		return entity.BoutiqueStats{}, f.totalsErr
	}
	return entity.BoutiqueStats{
		TotalSales:    decimal.NewFromInt(250000),
		OrderCount:    14,
		ProductCount:  32,
		CustomerCount: 11,
	}, nil
}

func (f *fakeStats) GetMonthlySeries(ctx context.Context, sess domain.Session, boutiqueID string) ([]entity.MonthlyPoint, error) {
	if f.monthlyErr != nil {
		return nil, f.monthlyErr
	}
	points := make([]entity.MonthlyPoint, dashboard.MonthlyPoints)
	for i := range points {
		points[i] = entity.MonthlyPoint{Month: fmt.Sprintf("2026-%02d", i+1), Total: decimal.NewFromInt(int64(i * 1000))}
	}
	return points, nil
}

func (f *fakeStats) GetCategoryShares(ctx context.Context, sess domain.Session, boutiqueID string) ([]entity.CategoryShare, error) {
	if f.sharesErr != nil {
		return nil, f.sharesErr
	}
	return []entity.CategoryShare{
		{Category: "Cosmétique", Total: decimal.NewFromInt(150000), Percent: decimal.NewFromInt(60)},
		{Category: "Artisanat", Total: decimal.NewFromInt(100000), Percent: decimal.NewFromInt(40)},
	}, nil
}

func TestSummary_ToutesLesCartesRemplies(t *testing.T) {
	uc := dashboard.NewUseCase(&fakeStats{}, logger.Nop())
	out := uc.Summary(context.Background(), domain.Anonymous(), "b1")

	assert.Empty(t, out.Totals.Error)
	assert.Equal(t, 14, out.Totals.Data.OrderCount)
	assert.NotEmpty(t, out.Totals.Data.TotalSalesLabel)

	assert.Empty(t, out.Monthly.Error)
	assert.Len(t, out.Monthly.Data, dashboard.MonthlyPoints)

	assert.Empty(t, out.Categories.Error)
	assert.Len(t, out.Categories.Data, 2)
}

// El fallo de una consulta marca solo su tarjeta; las otras dos llegan intactas.
func TestSummary_EchecsIndependantsParCarte(t *testing.T) {
	uc := dashboard.NewUseCase(&fakeStats{monthlyErr: errors.New("endpoint caído")}, logger.Nop())
	out := uc.Summary(context.Background(), domain.Anonymous(), "b1")

	assert.Equal(t, "série mensuelle indisponible", out.Monthly.Error)
	assert.Empty(t, out.Monthly.Data)

	assert.Empty(t, out.Totals.Error, "la tarjeta de totales no debe verse afectada")
	assert.Equal(t, 14, out.Totals.Data.OrderCount)
	assert.Empty(t, out.Categories.Error)
	assert.Len(t, out.Categories.Data, 2)
}

func TestSummary_ToutEnEchec(t *testing.T) {
	repo := &fakeStats{
		totalsErr:  errors.New("a"),
		monthlyErr: errors.New("b"),
		sharesErr:  errors.New("c"),
	}
	uc := dashboard.NewUseCase(repo, logger.Nop())
	out := uc.Summary(context.Background(), domain.Anonymous(), "b1")

	assert.Equal(t, "totaux indisponibles", out.Totals.Error)
	assert.Equal(t, "série mensuelle indisponible", out.Monthly.Error)
	assert.Equal(t, "répartition par catégorie indisponible", out.Categories.Error)
}
