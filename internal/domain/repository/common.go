// Package repository define los puertos de acceso a datos del gateway.
// Las implementaciones viven en infrastructure/rest y traducen cada llamada
// en una petición HTTP al backend; no hay ninguna copia autoritativa local.
package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Claves de ordenación soportadas por los listados.
const (
	SortByDate   = "date"
	SortByAmount = "montant"
)

// Direcciones de ordenación.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListParams parámetros de un listado: búsqueda libre, filtros, orden y página.
// Los punteros nil significan "sin filtro". Se traducen a query params cuando
// la vista es server-driven; en vistas client-driven se ignoran en el fetch y
// el controlador filtra en memoria.
type ListParams struct {
	Query     string
	Status    string // "" o "all" = todos los estados
	DateFrom  *time.Time
	DateTo    *time.Time
	AmountMin *decimal.Decimal
	AmountMax *decimal.Decimal
	SortKey   string // SortByDate | SortByAmount
	SortDesc  bool
	Page      int // 1-based; 0 = primera página
}

// Page página de resultados normalizada. El backend devuelve o bien un array
// JSON desnudo (Count = len(Items)) o bien un sobre {results, count}.
type Page[T any] struct {
	Items []T
	Count int
}
