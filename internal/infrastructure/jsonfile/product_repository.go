package jsonfile

import (
	"github.com/invopos/inventario-lite/internal/domain/entity"
	"github.com/invopos/inventario-lite/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo de productos sobre productos.json.
type ProductRepo struct {
	col *collection[entity.Product]
}

// NewProductRepository construye el adaptador. path apunta al archivo JSON
// del catálogo (se crea al primer upsert si no existe).
func NewProductRepository(path string) *ProductRepo {
	return &ProductRepo{col: newCollection[entity.Product](path, "productos")}
}

// List devuelve el catálogo completo.
func (r *ProductRepo) List() ([]entity.Product, error) {
	return r.col.read()
}

// GetBySKU devuelve el producto o nil si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	list, err := r.col.read()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].SKU == sku {
			p := list[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Upsert reemplaza el registro del SKU en su posición, o lo agrega al final.
func (r *ProductRepo) Upsert(p entity.Product) ([]entity.Product, error) {
	return r.col.update(func(list []entity.Product) ([]entity.Product, error) {
		for i := range list {
			if list[i].SKU == p.SKU {
				list[i] = p
				return list, nil
			}
		}
		return append(list, p), nil
	})
}

// Delete quita el registro del SKU; si no existe, la lista queda igual.
func (r *ProductRepo) Delete(sku string) ([]entity.Product, error) {
	return r.col.update(func(list []entity.Product) ([]entity.Product, error) {
		next := list[:0]
		for _, p := range list {
			if p.SKU != sku {
				next = append(next, p)
			}
		}
		return next, nil
	})
}
