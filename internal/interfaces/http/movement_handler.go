package http

import (
	"errors"
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/invopos/inventario-lite/internal/application/dto"
	"github.com/invopos/inventario-lite/internal/application/usecase"
	"github.com/invopos/inventario-lite/internal/domain"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos.
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         movements
// @Produce      json
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	// Orden de presentación: el almacenamiento no garantiza ninguno. Las
	// fechas canónicas RFC3339 en UTC ordenan lexicográficamente.
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date > list[j].Date })
	return c.JSON(dto.MovementListResponse{Movements: list})
}

// Create godoc
// @Summary      Registrar movimiento (id y fecha los asigna el servidor)
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "product, sku, movement y quantity son requeridos; date opcional"
// @Success      201   {object}  entity.Movement
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	created, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update godoc
// @Summary      Editar movimiento por id (mismas validaciones que el alta)
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Id del movimiento"
// @Param        body  body  dto.UpdateMovementRequest  true  "Campos a cambiar; el id no es parcheable"
// @Success      200   {object}  entity.Movement
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	updated, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(updated)
}

// Delete godoc
// @Summary      Borrar movimiento (idempotente)
// @Tags         movements
// @Produce      json
// @Param        id  path  string  true  "Id del movimiento"
// @Success      200  {object}  dto.OkResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// NormalizeDates godoc
// @Summary      Normalizar las fechas legadas del libro completo
// @Tags         movements
// @Produce      json
// @Success      200  {object}  dto.NormalizeDatesResponse
// @Router       /api/movements/normalize [post]
func (h *MovementHandler) NormalizeDates(c *fiber.Ctx) error {
	updated, err := h.uc.NormalizeDates()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.NormalizeDatesResponse{Ok: true, Updated: updated})
}
