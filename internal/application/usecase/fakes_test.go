package usecase_test

import (
	"fmt"

	"github.com/invopos/inventario-lite/internal/domain"
	"github.com/invopos/inventario-lite/internal/domain/entity"
	"github.com/invopos/inventario-lite/internal/domain/repository"
)

// Repositorios en memoria con la misma semántica que los adaptadores reales.

type fakeProductRepo struct {
	list []entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) List() ([]entity.Product, error) {
	return append([]entity.Product{}, r.list...), nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for i := range r.list {
		if r.list[i].SKU == sku {
			p := r.list[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Upsert(p entity.Product) ([]entity.Product, error) {
	for i := range r.list {
		if r.list[i].SKU == p.SKU {
			r.list[i] = p
			return r.List()
		}
	}
	r.list = append(r.list, p)
	return r.List()
}

func (r *fakeProductRepo) Delete(sku string) ([]entity.Product, error) {
	next := r.list[:0]
	for _, p := range r.list {
		if p.SKU != sku {
			next = append(next, p)
		}
	}
	r.list = next
	return r.List()
}

type fakeMovementRepo struct {
	list []entity.Movement
}

var _ repository.MovementRepository = (*fakeMovementRepo)(nil)

func (r *fakeMovementRepo) List() ([]entity.Movement, error) {
	return append([]entity.Movement{}, r.list...), nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for i := range r.list {
		if r.list[i].ID == id {
			m := r.list[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) Insert(m entity.Movement) error {
	r.list = append([]entity.Movement{m}, r.list...)
	return nil
}

func (r *fakeMovementRepo) Update(m entity.Movement) error {
	for i := range r.list {
		if r.list[i].ID == m.ID {
			r.list[i] = m
			return nil
		}
	}
	return fmt.Errorf("%w: movimiento %s", domain.ErrNotFound, m.ID)
}

func (r *fakeMovementRepo) Delete(id string) error {
	next := r.list[:0]
	for _, m := range r.list {
		if m.ID != id {
			next = append(next, m)
		}
	}
	r.list = next
	return nil
}

func (r *fakeMovementRepo) ReplaceAll(list []entity.Movement) error {
	r.list = append([]entity.Movement{}, list...)
	return nil
}
