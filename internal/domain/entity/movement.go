package entity

import (
	"fmt"
	"math"
	"strings"

	"github.com/invopos/inventario-lite/internal/domain"
)

// Tipos de movimiento permitidos. Cualquier otro valor es entrada inválida.
const (
	MovementStockIn  = "Stock In"
	MovementStockOut = "Stock Out"
)

// Movement es un registro del libro de movimientos: una entrada o salida de
// stock para un SKU. Product es el nombre del producto al momento del
// movimiento (desnormalizado: no se re-sincroniza si el producto se renombra).
// SKU es una referencia débil: puede apuntar a un producto que todavía no existe.
type Movement struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"` // RFC3339 UTC, normalizada al escribir
	Product  string  `json:"product"`
	SKU      string  `json:"sku"`
	Movement string  `json:"movement"`
	Quantity float64 `json:"quantity"`
	User     string  `json:"user"`
}

// Delta devuelve la cantidad con signo: positiva para entradas, negativa para salidas.
func (m Movement) Delta() float64 {
	if m.Movement == MovementStockOut {
		return -m.Quantity
	}
	return m.Quantity
}

// Validate aplica las reglas de un movimiento bien formado. Se invoca igual
// en la creación y en la actualización (el registro ya fusionado con el patch).
func (m Movement) Validate() error {
	if strings.TrimSpace(m.Product) == "" {
		return fmt.Errorf("%w: product requerido", domain.ErrValidation)
	}
	if strings.TrimSpace(m.SKU) == "" {
		return fmt.Errorf("%w: sku requerido", domain.ErrValidation)
	}
	if m.Movement != MovementStockIn && m.Movement != MovementStockOut {
		return fmt.Errorf("%w: movement debe ser %q o %q", domain.ErrValidation, MovementStockIn, MovementStockOut)
	}
	if math.IsNaN(m.Quantity) || math.IsInf(m.Quantity, 0) || m.Quantity <= 0 {
		return fmt.Errorf("%w: quantity debe ser un número positivo", domain.ErrValidation)
	}
	return nil
}
