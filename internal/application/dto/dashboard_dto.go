package dto

import "github.com/shopspring/decimal"

// DashboardCard envoltorio de cada tarjeta del dashboard. Las tarjetas fallan
// de forma independiente: Error lleva el mensaje de la tarjeta que falló sin
// afectar a las demás.
type DashboardCard[T any] struct {
	Data  T      `json:"data"`
	Error string `json:"error,omitempty"`
}

// DashboardTotals tarjeta de totales precalculados.
type DashboardTotals struct {
	TotalSales      decimal.Decimal `json:"ventes_totales"`
	TotalSalesLabel string          `json:"ventes_totales_affiche"` // FCFA
	OrderCount      int             `json:"nb_commandes"`
	ProductCount    int             `json:"nb_produits"`
	CustomerCount   int             `json:"nb_clients"`
}

// DashboardMonthlyPoint punto de la serie mensual (12 puntos fijos).
type DashboardMonthlyPoint struct {
	Month string          `json:"mois"`
	Total decimal.Decimal `json:"total"`
}

// DashboardCategoryShare porción del gráfico por categoría.
type DashboardCategoryShare struct {
	Category     string          `json:"categorie"`
	Total        decimal.Decimal `json:"total"`
	Percent      decimal.Decimal `json:"pourcentage"`
	PercentLabel string          `json:"pourcentage_affiche"`
}

// DashboardResponse respuesta de GET /api/boutique/dashboard.
type DashboardResponse struct {
	Totals     DashboardCard[DashboardTotals]          `json:"totaux"`
	Monthly    DashboardCard[[]DashboardMonthlyPoint]  `json:"serie_mensuelle"`
	Categories DashboardCard[[]DashboardCategoryShare] `json:"repartition_categories"`
}
