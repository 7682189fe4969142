// Package listing implementa el patrón genérico de vista-listado que se
// repite en todas las pantallas: búsqueda libre, filtros por estado, rango de
// fechas y rango de importes (todos conjuntivos), ordenación por fecha o
// importe, paginación y mutaciones in situ tras confirmación del backend.
//
// Cada vista elige un autoridad de datos y se queda con ella:
//
//   - ModeClient: un único fetch de la colección completa; filtro, orden y
//     página se recomputan síncronamente en memoria.
//   - ModeServer: cada cambio de filtro/orden/página re-consulta al backend
//     con query params; el controlador no recomputa nada.
//
// Nunca se mezclan las dos verdades.
package listing

import (
	"context"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
)

// Mode autoridad de datos de la vista.
type Mode int

const (
	// ModeClient fetch único y recomputación local.
	ModeClient Mode = iota
	// ModeServer re-fetch en cada cambio de entrada.
	ModeServer
)

// Fields extractores de campos de una fila. Los accesores nil desactivan el
// predicado correspondiente (p. ej. un listado sin importes no define Amount).
type Fields[T any] struct {
	ID     func(T) string
	Text   func(T) []string // campos designados para la búsqueda libre
	Status func(T) string
	Date   func(T) time.Time
	Amount func(T) decimal.Decimal
}

// Fetcher obtiene una página (o la colección completa si p está vacío).
type Fetcher[T any] func(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[T], error)

// Controller estado transitorio de una vista-listado. Vive lo que vive la
// vista; no se comparte entre pantallas ni se persiste.
type Controller[T any] struct {
	mode     Mode
	fields   Fields[T]
	fetch    Fetcher[T]
	pageSize int

	params repository.ListParams

	rows  []T // ModeClient: colección completa; ModeServer: página actual
	count int // ModeServer: total reportado por el backend

	gen atomic.Uint64 // generación de la última petición emitida
}

// NewController construye el controlador de un listado.
func NewController[T any](mode Mode, pageSize int, fields Fields[T], fetch Fetcher[T]) *Controller[T] {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &Controller[T]{
		mode:     mode,
		fields:   fields,
		fetch:    fetch,
		pageSize: pageSize,
		params:   repository.ListParams{Page: 1},
	}
}

// SetQuery texto de búsqueda libre (substring, sin distinción de mayúsculas).
func (c *Controller[T]) SetQuery(text string) {
	c.params.Query = strings.TrimSpace(text)
	c.params.Page = 1
}

// SetStatus filtro de estado; "" o "all" aceptan cualquier estado.
func (c *Controller[T]) SetStatus(status string) {
	c.params.Status = status
	c.params.Page = 1
}

// SetDateRange rango de fechas, inclusivo en ambos extremos. nil = sin límite.
func (c *Controller[T]) SetDateRange(from, to *time.Time) {
	c.params.DateFrom = from
	c.params.DateTo = to
	c.params.Page = 1
}

// SetAmountRange rango de importes, inclusivo en ambos extremos.
func (c *Controller[T]) SetAmountRange(min, max *decimal.Decimal) {
	c.params.AmountMin = min
	c.params.AmountMax = max
	c.params.Page = 1
}

// SetSort clave de ordenación. Repetir la clave actual invierte la dirección;
// una clave nueva resetea a descendente.
func (c *Controller[T]) SetSort(key string) {
	if key == c.params.SortKey {
		c.params.SortDesc = !c.params.SortDesc
		return
	}
	c.params.SortKey = key
	c.params.SortDesc = true
}

// SetPage página 1-based.
func (c *Controller[T]) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	c.params.Page = n
}

// ApplyParams siembra de golpe los parámetros de la vista (típicamente desde
// la query string de la petición). A diferencia de SetSort no hay toggle: la
// dirección llega ya resuelta.
func (c *Controller[T]) ApplyParams(p repository.ListParams) {
	if p.Page < 1 {
		p.Page = 1
	}
	c.params = p
}

// Params parámetros actuales (para reconstruir enlaces de la vista).
func (c *Controller[T]) Params() repository.ListParams { return c.params }

// Load consulta al backend y aplica la respuesta. Si mientras tanto se emitió
// una petición más reciente, la respuesta obsoleta se descarta sin tocar el
// estado: solo la generación más alta escribe.
func (c *Controller[T]) Load(ctx context.Context, sess domain.Session) error {
	gen := c.gen.Add(1)

	var fetchParams repository.ListParams
	if c.mode == ModeServer {
		fetchParams = c.params
	}
	page, err := c.fetch(ctx, sess, fetchParams)
	if c.gen.Load() != gen {
		return nil // respuesta obsoleta
	}
	if err != nil {
		return err // el estado previo queda intacto
	}
	c.rows = page.Items
	c.count = page.Count
	return nil
}

// VisibleRows filas visibles con los parámetros actuales. En ModeServer el
// backend ya filtró y paginó; en ModeClient se recomputa aquí.
func (c *Controller[T]) VisibleRows() []T {
	if c.mode == ModeServer {
		return c.rows
	}
	filtered := c.filtered()
	c.sortRows(filtered)
	return c.slicePage(filtered)
}

// Count total de filas que satisfacen los filtros (antes de paginar).
func (c *Controller[T]) Count() int {
	if c.mode == ModeServer {
		return c.count
	}
	return len(c.filtered())
}

// ApplyUpdate reemplaza in situ la fila con el mismo ID tras una edición o
// cambio de estado confirmado por el backend. Sin re-fetch completo.
func (c *Controller[T]) ApplyUpdate(updated T) {
	if c.fields.ID == nil {
		return
	}
	id := c.fields.ID(updated)
	for i, row := range c.rows {
		if c.fields.ID(row) == id {
			c.rows[i] = updated
			return
		}
	}
}

// ApplyDelete retira in situ la fila con el ID dado tras un borrado
// confirmado por el backend.
func (c *Controller[T]) ApplyDelete(id string) {
	if c.fields.ID == nil {
		return
	}
	for i, row := range c.rows {
		if c.fields.ID(row) == id {
			c.rows = append(c.rows[:i], c.rows[i+1:]...)
			if c.mode == ModeServer && c.count > 0 {
				c.count--
			}
			return
		}
	}
}

// filtered aplica los predicados conjuntivamente: una fila es visible si y
// solo si satisface la búsqueda Y el estado Y el rango de fechas Y el rango
// de importes.
func (c *Controller[T]) filtered() []T {
	out := make([]T, 0, len(c.rows))
	for _, row := range c.rows {
		if c.matches(row) {
			out = append(out, row)
		}
	}
	return out
}

func (c *Controller[T]) matches(row T) bool {
	p := c.params

	if p.Query != "" && c.fields.Text != nil {
		needle := strings.ToLower(p.Query)
		found := false
		for _, field := range c.fields.Text(row) {
			if strings.Contains(strings.ToLower(field), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if p.Status != "" && p.Status != "all" && c.fields.Status != nil {
		if c.fields.Status(row) != p.Status {
			return false
		}
	}

	if (p.DateFrom != nil || p.DateTo != nil) && c.fields.Date != nil {
		d := c.fields.Date(row)
		if p.DateFrom != nil && d.Before(*p.DateFrom) {
			return false
		}
		if p.DateTo != nil && d.After(*p.DateTo) {
			return false
		}
	}

	if (p.AmountMin != nil || p.AmountMax != nil) && c.fields.Amount != nil {
		a := c.fields.Amount(row)
		if p.AmountMin != nil && a.Cmp(*p.AmountMin) < 0 {
			return false
		}
		if p.AmountMax != nil && a.Cmp(*p.AmountMax) > 0 {
			return false
		}
	}

	return true
}

// sortRows ordenación estable: los empates conservan el orden de la colección
// subyacente.
func (c *Controller[T]) sortRows(rows []T) {
	p := c.params
	switch {
	case p.SortKey == repository.SortByDate && c.fields.Date != nil:
		stableSort(rows, func(a, b T) bool {
			if p.SortDesc {
				return c.fields.Date(a).After(c.fields.Date(b))
			}
			return c.fields.Date(a).Before(c.fields.Date(b))
		})
	case p.SortKey == repository.SortByAmount && c.fields.Amount != nil:
		stableSort(rows, func(a, b T) bool {
			if p.SortDesc {
				return c.fields.Amount(a).Cmp(c.fields.Amount(b)) > 0
			}
			return c.fields.Amount(a).Cmp(c.fields.Amount(b)) < 0
		})
	}
}

func stableSort[T any](rows []T, less func(a, b T) bool) {
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
}

func (c *Controller[T]) slicePage(rows []T) []T {
	start := (c.params.Page - 1) * c.pageSize
	if start >= len(rows) {
		return []T{}
	}
	end := start + c.pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
