package usecase

import (
	"fmt"
	"strings"

	"github.com/invopos/inventario-lite/internal/application/dto"
	"github.com/invopos/inventario-lite/internal/domain"
	"github.com/invopos/inventario-lite/internal/domain/entity"
	"github.com/invopos/inventario-lite/internal/domain/inventory"
	"github.com/invopos/inventario-lite/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo. Regla central: el stock base se
// escribe una sola vez al crear el producto; después es de solo lectura desde
// el catálogo y todo cambio de cantidad entra por el libro de movimientos.
type ProductUseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, movements repository.MovementRepository) *ProductUseCase {
	return &ProductUseCase{products: products, movements: movements}
}

// List devuelve el catálogo resuelto: cada producto con su stock efectivo
// (base + delta de movimientos) y su estado derivado.
func (uc *ProductUseCase) List() ([]inventory.ResolvedProduct, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	return inventory.Resolve(products, movements), nil
}

// Get devuelve un producto resuelto, o nil si el SKU no existe.
func (uc *ProductUseCase) Get(sku string) (*inventory.ResolvedProduct, error) {
	resolved, err := uc.List()
	if err != nil {
		return nil, err
	}
	for i := range resolved {
		if resolved[i].SKU == sku {
			return &resolved[i], nil
		}
	}
	return nil, nil
}

// Create da de alta un producto. sku, nombre y categoria son obligatorios;
// stock y precio valen 0 si no vienen. Es la única ruta que acepta un stock
// inicial. Si el SKU ya existía, el upsert lo reemplaza completo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) ([]entity.Product, error) {
	for campo, valor := range map[string]string{
		"sku":       in.SKU,
		"nombre":    in.Nombre,
		"categoria": in.Categoria,
	} {
		if strings.TrimSpace(valor) == "" {
			return nil, fmt.Errorf("%w: campo %s requerido", domain.ErrValidation, campo)
		}
	}
	p := entity.Product{
		SKU:       strings.TrimSpace(in.SKU),
		Nombre:    in.Nombre,
		Categoria: in.Categoria,
		Stock:     in.Stock,
		Precio:    in.Precio,
	}
	return uc.products.Upsert(p)
}

// Update edita un producto por SKU. El stock base nunca se toca desde aquí:
// se conserva el guardado, y si el SKU no existía el producto se crea con
// stock 0 (la cantidad inicial debe entrar como movimiento). Los campos
// omitidos del patch conservan el valor existente; el upsert que se persiste
// sigue siendo un reemplazo total ya materializado.
func (uc *ProductUseCase) Update(sku string, in dto.UpdateProductRequest) ([]entity.Product, error) {
	existing, err := uc.products.GetBySKU(sku)
	if err != nil {
		return nil, err
	}

	p := entity.Product{SKU: sku, Stock: 0}
	if existing != nil {
		p = *existing
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Categoria != nil {
		p.Categoria = *in.Categoria
	}
	if in.Precio != nil {
		p.Precio = *in.Precio
	}
	return uc.products.Upsert(p)
}

// SetDesiredStock reemplaza el producto con la variante de edición que recibe
// el stock EFECTIVO deseado: se guarda base = deseado - delta(sku), de modo
// que la vista resuelta muestre exactamente la cantidad pedida sin tocar el
// libro de movimientos. Reemplazo total: campos omitidos quedan en su valor
// cero. Falla con ErrNotFound si el producto no existe.
func (uc *ProductUseCase) SetDesiredStock(sku string, in dto.EditProductStockRequest) ([]entity.Product, error) {
	existing, err := uc.products.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, sku)
	}
	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	delta := inventory.DeltaBySKU(movements)[sku]

	p := entity.Product{
		SKU:       sku,
		Nombre:    in.Nombre,
		Categoria: in.Categoria,
		Stock:     in.Stock - delta,
		Precio:    in.Precio,
	}
	return uc.products.Upsert(p)
}

// Delete elimina un producto por SKU. Borrar un SKU inexistente es un no-op.
// No toca el libro: los movimientos del SKU quedan huérfanos y su delta
// volvería a aplicar si el producto se crea de nuevo.
func (uc *ProductUseCase) Delete(sku string) ([]entity.Product, error) {
	return uc.products.Delete(sku)
}
