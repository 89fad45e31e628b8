package jsonfile

import (
	"fmt"

	"github.com/invopos/inventario-lite/internal/domain"
	"github.com/invopos/inventario-lite/internal/domain/entity"
	"github.com/invopos/inventario-lite/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos sobre movements.json.
type MovementRepo struct {
	col *collection[entity.Movement]
}

// NewMovementRepository construye el adaptador.
func NewMovementRepository(path string) *MovementRepo {
	return &MovementRepo{col: newCollection[entity.Movement](path, "movements")}
}

// List devuelve el libro completo en el orden del archivo.
func (r *MovementRepo) List() ([]entity.Movement, error) {
	return r.col.read()
}

// GetByID devuelve el movimiento o nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	list, err := r.col.read()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			m := list[i]
			return &m, nil
		}
	}
	return nil, nil
}

// Insert agrega el movimiento al inicio de la lista (los más nuevos primero).
func (r *MovementRepo) Insert(m entity.Movement) error {
	_, err := r.col.update(func(list []entity.Movement) ([]entity.Movement, error) {
		return append([]entity.Movement{m}, list...), nil
	})
	return err
}

// Update reemplaza el registro con el mismo id. ErrNotFound si no existe;
// no se escribe nada en ese caso.
func (r *MovementRepo) Update(m entity.Movement) error {
	_, err := r.col.update(func(list []entity.Movement) ([]entity.Movement, error) {
		for i := range list {
			if list[i].ID == m.ID {
				list[i] = m
				return list, nil
			}
		}
		return nil, fmt.Errorf("%w: movimiento %s", domain.ErrNotFound, m.ID)
	})
	return err
}

// Delete quita el movimiento. Un id inexistente deja la lista igual: el
// borrado es idempotente a propósito.
func (r *MovementRepo) Delete(id string) error {
	_, err := r.col.update(func(list []entity.Movement) ([]entity.Movement, error) {
		next := list[:0]
		for _, m := range list {
			if m.ID != id {
				next = append(next, m)
			}
		}
		return next, nil
	})
	return err
}

// ReplaceAll persiste la lista completa (trabajo de normalización masiva).
func (r *MovementRepo) ReplaceAll(list []entity.Movement) error {
	_, err := r.col.update(func(_ []entity.Movement) ([]entity.Movement, error) {
		return list, nil
	})
	return err
}
