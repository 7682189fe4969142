package listing_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maboutik/maboutik-web/internal/application/listing"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type row struct {
	id     string
	client string
	status string
	date   time.Time
	total  decimal.Decimal
}

var rowFields = listing.Fields[row]{
	ID:     func(r row) string { return r.id },
	Text:   func(r row) []string { return []string{r.id, r.client} },
	Status: func(r row) string { return r.status },
	Date:   func(r row) time.Time { return r.date },
	Amount: func(r row) decimal.Decimal { return r.total },
}

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func fixedRows() []row {
	return []row{
		{id: "c1", client: "Awa Diop", status: "livree", date: day(1), total: decimal.NewFromInt(50)},
		{id: "c2", client: "Moussa Ndiaye", status: "en_attente", date: day(2), total: decimal.NewFromInt(120)},
		{id: "c3", client: "Awa Sarr", status: "livree", date: day(3), total: decimal.NewFromInt(80)},
	}
}

// fixedFetcher siempre devuelve las mismas filas (vista client-driven).
func fixedFetcher(rows []row) listing.Fetcher[row] {
	return func(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[row], error) {
		return repository.Page[row]{Items: rows, Count: len(rows)}, nil
	}
}

func loadedController(t *testing.T, rows []row, pageSize int) *listing.Controller[row] {
	t.Helper()
	ctrl := listing.NewController(listing.ModeClient, pageSize, rowFields, fixedFetcher(rows))
	require.NoError(t, ctrl.Load(context.Background(), domain.Anonymous()))
	return ctrl
}

func ids(rows []row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.id)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros conjuntivos
// ──────────────────────────────────────────────────────────────────────────────

// Rango de importes [60, 100] sobre totales {50, 120, 80}: solo sobrevive 80.
func TestFiltreMontant_RangoInclusivo(t *testing.T) {
	ctrl := loadedController(t, fixedRows(), 20)

	min := decimal.NewFromInt(60)
	max := decimal.NewFromInt(100)
	ctrl.SetAmountRange(&min, &max)

	visible := ctrl.VisibleRows()
	require.Len(t, visible, 1, "solo el total 80 cae dentro de [60, 100]")
	assert.Equal(t, "c3", visible[0].id)
	assert.Equal(t, 1, ctrl.Count())
}

// Una fila es visible solo si satisface TODOS los filtros activos a la vez.
func TestFiltres_Conjonctifs(t *testing.T) {
	ctrl := loadedController(t, fixedRows(), 20)

	// "awa" matchea c1 y c3; el estado livree no descarta ninguna de las dos...
	ctrl.SetQuery("awa")
	ctrl.SetStatus("livree")
	assert.Equal(t, []string{"c1", "c3"}, ids(ctrl.VisibleRows()))

	// ...pero el rango de importes deja solo c3.
	min := decimal.NewFromInt(60)
	ctrl.SetAmountRange(&min, nil)
	assert.Equal(t, []string{"c3"}, ids(ctrl.VisibleRows()))
}

func TestFiltreStatut_AllAcceptaTodo(t *testing.T) {
	ctrl := loadedController(t, fixedRows(), 20)
	ctrl.SetStatus("all")
	assert.Equal(t, 3, ctrl.Count(), `"all" no debe filtrar nada`)
	ctrl.SetStatus("")
	assert.Equal(t, 3, ctrl.Count())
}

func TestFiltreDates_InclusifDeuxBouts(t *testing.T) {
	ctrl := loadedController(t, fixedRows(), 20)
	from, to := day(2), day(3)
	ctrl.SetDateRange(&from, &to)
	assert.Equal(t, []string{"c2", "c3"}, ids(ctrl.VisibleRows()),
		"los dos extremos del rango de fechas son inclusivos")
}

func TestRecherche_SansCasse(t *testing.T) {
	ctrl := loadedController(t, fixedRows(), 20)
	ctrl.SetQuery("MOUSSA")
	assert.Equal(t, []string{"c2"}, ids(ctrl.VisibleRows()))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ordenación
// ──────────────────────────────────────────────────────────────────────────────

// Repetir la clave invierte la dirección; una clave nueva resetea a descendente.
func TestTri_ToggleEtNouvelleCle(t *testing.T) {
	ctrl := loadedController(t, fixedRows(), 20)

	ctrl.SetSort(repository.SortByAmount) // clave nueva → descendente
	assert.Equal(t, []string{"c2", "c3", "c1"}, ids(ctrl.VisibleRows()))

	ctrl.SetSort(repository.SortByAmount) // misma clave → invierte
	assert.Equal(t, []string{"c1", "c3", "c2"}, ids(ctrl.VisibleRows()))

	ctrl.SetSort(repository.SortByDate) // clave nueva → descendente otra vez
	assert.Equal(t, []string{"c3", "c2", "c1"}, ids(ctrl.VisibleRows()))
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestPagination_TranchesEtPageVide(t *testing.T) {
	ctrl := loadedController(t, fixedRows(), 2)

	assert.Equal(t, []string{"c1", "c2"}, ids(ctrl.VisibleRows()))
	assert.Equal(t, 3, ctrl.Count(), "Count cuenta el total filtrado, no la página")

	ctrl.SetPage(2)
	assert.Equal(t, []string{"c3"}, ids(ctrl.VisibleRows()))

	ctrl.SetPage(5)
	assert.Empty(t, ctrl.VisibleRows(), "página fuera de rango devuelve vacío")
}

// Cambiar cualquier filtro devuelve a la página 1.
func TestPagination_FiltroReseteaPagina(t *testing.T) {
	ctrl := loadedController(t, fixedRows(), 2)
	ctrl.SetPage(2)
	ctrl.SetQuery("awa")
	assert.Equal(t, 1, ctrl.Params().Page)
}

// ──────────────────────────────────────────────────────────────────────────────
// Respuestas obsoletas y errores
// ──────────────────────────────────────────────────────────────────────────────

// Una respuesta de una petición antigua que llega después de otra más nueva
// se descarta: solo la generación más reciente escribe el estado.
func TestLoad_ReponseObsoleteEcartee(t *testing.T) {
	stale := []row{{id: "vieux"}}
	fresh := []row{{id: "nouveau"}}

	var calls atomic.Int32
	firstEntered := make(chan struct{})
	releaseFirst := make(chan struct{})
	fetch := func(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[row], error) {
		if calls.Add(1) == 1 {
			close(firstEntered)
			<-releaseFirst
			return repository.Page[row]{Items: stale, Count: 1}, nil
		}
		return repository.Page[row]{Items: fresh, Count: 1}, nil
	}

	ctrl := listing.NewController(listing.ModeClient, 20, rowFields, fetch)
	ctx := context.Background()

	firstDone := make(chan error, 1)
	go func() { firstDone <- ctrl.Load(ctx, domain.Anonymous()) }()
	<-firstEntered

	// Segunda petición, emitida mientras la primera sigue en vuelo.
	require.NoError(t, ctrl.Load(ctx, domain.Anonymous()))

	close(releaseFirst)
	require.NoError(t, <-firstDone)

	assert.Equal(t, []string{"nouveau"}, ids(ctrl.VisibleRows()),
		"la respuesta obsoleta no debe sobrescribir a la más reciente")
}

// Un fetch fallido no toca las filas previas.
func TestLoad_ErreurConserveEtatPrecedent(t *testing.T) {
	var fail atomic.Bool
	fetch := func(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[row], error) {
		if fail.Load() {
			return repository.Page[row]{}, errors.New("backend caído")
		}
		return repository.Page[row]{Items: fixedRows(), Count: 3}, nil
	}
	ctrl := listing.NewController(listing.ModeClient, 20, rowFields, fetch)
	ctx := context.Background()

	require.NoError(t, ctrl.Load(ctx, domain.Anonymous()))
	require.Equal(t, 3, ctrl.Count())

	fail.Store(true)
	require.Error(t, ctrl.Load(ctx, domain.Anonymous()))
	assert.Equal(t, 3, ctrl.Count(), "el error deja las filas previas intactas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones in situ
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyDelete_RetireExactementLaLigne(t *testing.T) {
	ctrl := loadedController(t, fixedRows(), 20)

	ctrl.ApplyDelete("c2")
	assert.Equal(t, []string{"c1", "c3"}, ids(ctrl.VisibleRows()))

	// ID inexistente: no pasa nada.
	ctrl.ApplyDelete("fantome")
	assert.Equal(t, 2, ctrl.Count())
}

func TestApplyUpdate_RemplaceParID(t *testing.T) {
	ctrl := loadedController(t, fixedRows(), 20)

	ctrl.ApplyUpdate(row{id: "c2", client: "Moussa Ndiaye", status: "livree", date: day(2), total: decimal.NewFromInt(120)})

	ctrl.SetStatus("livree")
	assert.Equal(t, []string{"c1", "c2", "c3"}, ids(ctrl.VisibleRows()),
		"la fila actualizada debe reflejar su nuevo estado")
}

func TestModeServer_CompteDecrementeAuDelete(t *testing.T) {
	fetch := func(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[row], error) {
		return repository.Page[row]{Items: fixedRows(), Count: 42}, nil
	}
	ctrl := listing.NewController(listing.ModeServer, 20, rowFields, fetch)
	require.NoError(t, ctrl.Load(context.Background(), domain.Anonymous()))

	assert.Equal(t, 42, ctrl.Count(), "en server-driven el total es el del backend")
	ctrl.ApplyDelete("c1")
	assert.Equal(t, 41, ctrl.Count())
}

// En server-driven las filas se muestran tal cual llegaron: nada se recomputa.
func TestModeServer_PasDeRecomputationLocale(t *testing.T) {
	fetch := func(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[row], error) {
		return repository.Page[row]{Items: fixedRows(), Count: 3}, nil
	}
	ctrl := listing.NewController(listing.ModeServer, 20, rowFields, fetch)
	require.NoError(t, ctrl.Load(context.Background(), domain.Anonymous()))

	ctrl.SetStatus("en_attente")
	assert.Len(t, ctrl.VisibleRows(), 3,
		"el controlador server-driven no filtra en memoria; re-consultar es responsabilidad de la vista")
}
