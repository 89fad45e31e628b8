package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invopos/inventario-lite/internal/domain/entity"
	"github.com/invopos/inventario-lite/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo de productos sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve el catálogo completo.
func (r *ProductRepo) List() ([]entity.Product, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT sku, nombre, categoria, stock, precio FROM productos ORDER BY sku`)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()

	list := []entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.SKU, &p.Nombre, &p.Categoria, &p.Stock, &p.Precio); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetBySKU devuelve el producto o nil si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(),
		`SELECT sku, nombre, categoria, stock, precio FROM productos WHERE sku = $1`, sku,
	).Scan(&p.SKU, &p.Nombre, &p.Categoria, &p.Stock, &p.Precio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	return &p, nil
}

// Upsert inserta o reemplaza completo el registro del SKU.
func (r *ProductRepo) Upsert(p entity.Product) ([]entity.Product, error) {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO productos (sku, nombre, categoria, stock, precio)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (sku) DO UPDATE
		SET nombre = EXCLUDED.nombre, categoria = EXCLUDED.categoria,
		    stock = EXCLUDED.stock, precio = EXCLUDED.precio`,
		p.SKU, p.Nombre, p.Categoria, p.Stock, p.Precio,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert producto: %w", err)
	}
	return r.List()
}

// Delete elimina el SKU si existe; cero filas afectadas no es error.
func (r *ProductRepo) Delete(sku string) ([]entity.Product, error) {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE sku = $1`, sku)
	if err != nil {
		return nil, fmt.Errorf("borrar producto: %w", err)
	}
	return r.List()
}
