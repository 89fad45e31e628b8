package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invopos/inventario-lite/internal/application/dto"
	"github.com/invopos/inventario-lite/internal/application/usecase"
	"github.com/invopos/inventario-lite/internal/domain"
)

// ProductHandler maneja las peticiones HTTP del catálogo.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos con stock efectivo y estado
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.ProductListResponse{Productos: out})
}

// GetBySKU godoc
// @Summary      Obtener un producto por SKU
// @Tags         products
// @Produce      json
// @Param        sku  path  string  true  "SKU del producto"
// @Success      200  {object}  inventory.ResolvedProduct
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{sku} [get]
func (h *ProductHandler) GetBySKU(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("sku"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto (única ruta que acepta stock inicial)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "sku, nombre y categoria son requeridos"
// @Success      201   {object}  dto.ProductMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	productos, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductMutationResponse{Ok: true, Productos: productos})
}

// Update godoc
// @Summary      Editar producto (el stock base no se toca desde aquí)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "SKU del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.ProductMutationResponse
// @Router       /api/products/{sku} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	productos, err := h.uc.Update(c.Params("sku"), in)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.ProductMutationResponse{Ok: true, Productos: productos})
}

// SetDesiredStock godoc
// @Summary      Fijar el stock efectivo deseado recalculando el stock base
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "SKU del producto"
// @Param        body  body  dto.EditProductStockRequest  true  "stock es el efectivo deseado"
// @Success      200   {object}  dto.ProductMutationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{sku}/stock [put]
func (h *ProductHandler) SetDesiredStock(c *fiber.Ctx) error {
	var in dto.EditProductStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	productos, err := h.uc.SetDesiredStock(c.Params("sku"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.ProductMutationResponse{Ok: true, Productos: productos})
}

// Delete godoc
// @Summary      Borrar producto (no borra sus movimientos)
// @Tags         products
// @Produce      json
// @Param        sku  path  string  true  "SKU del producto"
// @Success      200  {object}  dto.OkResponse
// @Router       /api/products/{sku} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.uc.Delete(c.Params("sku")); err != nil {
		return internalError(c, err)
	}
	// 200 con body simple aunque el SKU no existiera: el borrado es idempotente.
	return c.JSON(dto.OkResponse{Ok: true})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
