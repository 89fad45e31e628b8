package dto

import (
	"github.com/shopspring/decimal"

	"github.com/invopos/inventario-lite/internal/domain/entity"
	"github.com/invopos/inventario-lite/internal/domain/inventory"
)

// CreateProductRequest entrada para crear un producto. El único momento en el
// que se acepta stock directamente es esta primera escritura del SKU.
type CreateProductRequest struct {
	SKU       string          `json:"sku"`
	Nombre    string          `json:"nombre"`
	Categoria string          `json:"categoria"`
	Stock     float64         `json:"stock"`
	Precio    decimal.Decimal `json:"precio"`
}

// UpdateProductRequest entrada para editar un producto. No lleva stock: el
// stock base es de solo lectura después de la creación y todo cambio de
// cantidad pasa por el libro de movimientos.
type UpdateProductRequest struct {
	Nombre    *string          `json:"nombre"`
	Categoria *string          `json:"categoria"`
	Precio    *decimal.Decimal `json:"precio"`
}

// EditProductStockRequest entrada de la variante de edición que recibe el
// stock efectivo deseado y recalcula el stock base (base = deseado - delta).
// Semántica de reemplazo total: los campos omitidos quedan en su valor cero.
type EditProductStockRequest struct {
	Nombre    string          `json:"nombre"`
	Categoria string          `json:"categoria"`
	Stock     float64         `json:"stock"` // efectivo deseado
	Precio    decimal.Decimal `json:"precio"`
}

// ProductListResponse lista del catálogo resuelta (con stock efectivo y estado).
type ProductListResponse struct {
	Productos []inventory.ResolvedProduct `json:"productos"`
}

// ProductMutationResponse respuesta de las mutaciones del catálogo: confirma
// y devuelve el catálogo completo tal como quedó persistido (stock base).
type ProductMutationResponse struct {
	Ok        bool             `json:"ok"`
	Productos []entity.Product `json:"productos"`
}
