package repository

import "github.com/invopos/inventario-lite/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el libro de
// movimientos (DIP). GetBySKU/List no garantizan orden; la capa de
// presentación ordena por fecha si lo necesita.
//
// Insert agrega al inicio de la colección (los más nuevos primero, una
// convención de presentación heredada del formato de datos).
// Update falla con domain.ErrNotFound si el id no existe.
// Delete es deliberadamente idempotente: borrar un id inexistente es un no-op.
type MovementRepository interface {
	List() ([]entity.Movement, error)
	GetByID(id string) (*entity.Movement, error)
	Insert(m entity.Movement) error
	Update(m entity.Movement) error
	Delete(id string) error
	ReplaceAll(list []entity.Movement) error
}
