package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse KPIs del tablero: tamaño del catálogo, categorías
// distintas, movimientos registrados hoy, conteo por estado derivado y valor
// total del inventario (Σ precio × stock efectivo).
type DashboardSummaryResponse struct {
	TotalProducts  int             `json:"total_products"`
	Categories     int             `json:"categories"`
	MovementsToday int             `json:"movements_today"`
	Available      int             `json:"available"`
	RestockSoon    int             `json:"restock_soon"`
	OutOfStock     int             `json:"out_of_stock"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}
