package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/invopos/inventario-lite/internal/application/dto"
	"github.com/invopos/inventario-lite/internal/domain"
	"github.com/invopos/inventario-lite/internal/domain/entity"
	"github.com/invopos/inventario-lite/internal/domain/repository"
	"github.com/invopos/inventario-lite/pkg/dates"
)

// Usuario registrado cuando la petición no trae actor.
const defaultUser = "System"

// MovementUseCase casos de uso del libro de movimientos: alta con id y fecha
// generados por el servidor, edición por id, borrado idempotente y
// normalización masiva de fechas.
type MovementUseCase struct {
	repo repository.MovementRepository
	now  func() time.Time
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo, now: time.Now}
}

// List devuelve todos los movimientos tal como están guardados, sin orden
// garantizado. Ordenar por fecha es cosa de la capa de presentación.
func (uc *MovementUseCase) List() ([]entity.Movement, error) {
	return uc.repo.List()
}

// GetByID devuelve un movimiento o nil si no existe.
func (uc *MovementUseCase) GetByID(id string) (*entity.Movement, error) {
	return uc.repo.GetByID(id)
}

// Create registra un movimiento nuevo. El id lo asigna siempre el servidor
// (el request no tiene campo id, así que cualquier id del cliente se pierde
// al decodificar). La fecha se normaliza; si falta o no se puede interpretar,
// la creación no falla: se usa la hora actual.
func (uc *MovementUseCase) Create(in dto.CreateMovementRequest) (*entity.Movement, error) {
	user := strings.TrimSpace(in.User)
	if user == "" {
		user = defaultUser
	}
	m := entity.Movement{
		ID:       uuid.NewString(),
		Date:     dates.NormalizeOr(in.Date, dates.Canonical(uc.now())),
		Product:  strings.TrimSpace(in.Product),
		SKU:      strings.TrimSpace(in.SKU),
		Movement: in.Movement,
		Quantity: in.Quantity,
		User:     user,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Insert(m); err != nil {
		return nil, fmt.Errorf("insertar movimiento: %w", err)
	}
	return &m, nil
}

// Update fusiona el patch sobre el registro guardado y lo revalida con las
// mismas reglas del alta: una cantidad no positiva o una dirección inválida
// se rechazan igual que en Create. El id nunca cambia. Si el patch trae una
// fecha no interpretable se conserva la fecha existente, nunca "ahora".
func (uc *MovementUseCase) Update(id string, in dto.UpdateMovementRequest) (*entity.Movement, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: movimiento %s", domain.ErrNotFound, id)
	}

	merged := *existing
	if in.Product != nil {
		merged.Product = strings.TrimSpace(*in.Product)
	}
	if in.SKU != nil {
		merged.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.Movement != nil {
		merged.Movement = *in.Movement
	}
	if in.Quantity != nil {
		merged.Quantity = *in.Quantity
	}
	if in.User != nil {
		merged.User = strings.TrimSpace(*in.User)
	}
	if in.Date != nil {
		merged.Date = dates.NormalizeOr(*in.Date, existing.Date)
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete elimina un movimiento. Borrar un id inexistente es un no-op
// deliberado, no un error; el efecto sobre el stock efectivo es inmediato.
func (uc *MovementUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// NormalizeDates recorre el libro completo y reescribe cada fecha cuya forma
// canónica difiera de la guardada. Las fechas que no se pueden interpretar se
// dejan intactas: en el trabajo masivo no hay fallback a "ahora". Devuelve
// cuántos registros cambiaron.
func (uc *MovementUseCase) NormalizeDates() (int, error) {
	list, err := uc.repo.List()
	if err != nil {
		return 0, err
	}
	updated := 0
	for i, m := range list {
		iso, ok := dates.Normalize(m.Date)
		if ok && iso != m.Date {
			list[i].Date = iso
			updated++
		}
	}
	if updated == 0 {
		return 0, nil
	}
	if err := uc.repo.ReplaceAll(list); err != nil {
		return 0, fmt.Errorf("guardar fechas normalizadas: %w", err)
	}
	return updated, nil
}
