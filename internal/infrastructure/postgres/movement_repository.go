package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/invopos/inventario-lite/internal/domain"
	"github.com/invopos/inventario-lite/internal/domain/entity"
	"github.com/invopos/inventario-lite/internal/domain/repository"
	"github.com/invopos/inventario-lite/pkg/dates"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos sobre PostgreSQL. La entidad lleva la
// fecha como string canónico; aquí se guarda como timestamptz y se vuelve a
// la forma canónica al leer. Una fecha legada no interpretable se guarda como
// época cero para no perder el registro (el trabajo de normalización no corre
// sobre este backend: las fechas ya entran normalizadas por el caso de uso).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, date, product, sku, movement, quantity, usuario`

func scanMovement(row pgx.Row) (entity.Movement, error) {
	var m entity.Movement
	var date time.Time
	if err := row.Scan(&m.ID, &date, &m.Product, &m.SKU, &m.Movement, &m.Quantity, &m.User); err != nil {
		return entity.Movement{}, err
	}
	m.Date = dates.Canonical(date)
	return m, nil
}

func parseDate(raw string) time.Time {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return time.Unix(0, 0).UTC()
}

// List devuelve el libro completo, los más nuevos primero.
func (r *MovementRepo) List() ([]entity.Movement, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+movementColumns+` FROM movements ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	defer rows.Close()

	list := []entity.Movement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// GetByID devuelve el movimiento o nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	m, err := scanMovement(r.q.QueryRow(context.Background(),
		`SELECT `+movementColumns+` FROM movements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar movimiento: %w", err)
	}
	return &m, nil
}

// Insert agrega un movimiento nuevo.
func (r *MovementRepo) Insert(m entity.Movement) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO movements (id, date, product, sku, movement, quantity, usuario)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, parseDate(m.Date), m.Product, m.SKU, m.Movement, m.Quantity, m.User,
	)
	if err != nil {
		return fmt.Errorf("insertar movimiento: %w", err)
	}
	return nil
}

// Update reemplaza el registro con el mismo id; ErrNotFound si no existe.
func (r *MovementRepo) Update(m entity.Movement) error {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE movements
		SET date = $2, product = $3, sku = $4, movement = $5, quantity = $6, usuario = $7
		WHERE id = $1`,
		m.ID, parseDate(m.Date), m.Product, m.SKU, m.Movement, m.Quantity, m.User,
	)
	if err != nil {
		return fmt.Errorf("actualizar movimiento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: movimiento %s", domain.ErrNotFound, m.ID)
	}
	return nil
}

// Delete elimina el movimiento; cero filas afectadas no es error.
func (r *MovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("borrar movimiento: %w", err)
	}
	return nil
}

// ReplaceAll reescribe el libro completo dentro de una transacción implícita
// por sentencia: vacía la tabla y reinserta. Solo lo usa la normalización
// masiva, que en este backend es un no-op en la práctica.
func (r *MovementRepo) ReplaceAll(list []entity.Movement) error {
	if _, err := r.q.Exec(context.Background(), `TRUNCATE movements`); err != nil {
		return fmt.Errorf("vaciar movimientos: %w", err)
	}
	for _, m := range list {
		if err := r.Insert(m); err != nil {
			return err
		}
	}
	return nil
}
