package entity

import "github.com/shopspring/decimal"

func init() {
	// Los archivos de datos existentes guardan precio como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product representa un producto del catálogo, clave primaria SKU.
// Stock es el stock BASE: la cantidad registrada independiente de los movimientos.
// El stock efectivo nunca se persiste; se deriva en internal/domain/inventory.
type Product struct {
	SKU       string          `json:"sku"`
	Nombre    string          `json:"nombre"`
	Categoria string          `json:"categoria"`
	Stock     float64         `json:"stock"`
	Precio    decimal.Decimal `json:"precio"`
}
