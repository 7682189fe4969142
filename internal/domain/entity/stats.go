package entity

import "github.com/shopspring/decimal"

// BoutiqueStats totales precalculados por el backend para el dashboard.
// El gateway no agrega nada: solo formatea para mostrar.
type BoutiqueStats struct {
	TotalSales    decimal.Decimal `json:"ventes_totales"`
	OrderCount    int             `json:"nb_commandes"`
	ProductCount  int             `json:"nb_produits"`
	CustomerCount int             `json:"nb_clients"`
}

// MonthlyPoint punto de la serie mensual de ventas (longitud fija: 12 meses).
type MonthlyPoint struct {
	Month string          `json:"mois"` // "2026-01"
	Total decimal.Decimal `json:"total"`
}

// CategoryShare reparto de ventas por categoría de producto.
type CategoryShare struct {
	Category string          `json:"categorie"`
	Total    decimal.Decimal `json:"total"`
	Percent  decimal.Decimal `json:"pourcentage"`
}
