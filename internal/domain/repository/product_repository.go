package repository

import "github.com/invopos/inventario-lite/internal/domain/entity"

// ProductRepository define el puerto de persistencia para el catálogo (DIP).
// Upsert tiene semántica de reemplazo total: el registro guardado queda
// exactamente como el recibido. Delete es un no-op si el SKU no existe.
// Ambas mutaciones devuelven el catálogo actualizado completo.
type ProductRepository interface {
	List() ([]entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Upsert(p entity.Product) ([]entity.Product, error)
	Delete(sku string) ([]entity.Product, error)
}
