package dto

import "github.com/invopos/inventario-lite/internal/domain/entity"

// CreateMovementRequest entrada para registrar un movimiento. No tiene campo
// id a propósito: el id siempre lo genera el servidor y cualquier id enviado
// por el cliente se descarta al decodificar. date es opcional; si falta o no
// se puede interpretar, se usa la hora actual.
type CreateMovementRequest struct {
	Product  string  `json:"product"`
	SKU      string  `json:"sku"`
	Movement string  `json:"movement"`
	Quantity float64 `json:"quantity"`
	User     string  `json:"user"`
	Date     string  `json:"date"`
}

// UpdateMovementRequest patch parcial sobre un movimiento existente. El id no
// es parcheable. Una date que no se pueda interpretar conserva la fecha ya
// guardada (editar nunca salta en silencio a "ahora").
type UpdateMovementRequest struct {
	Product  *string  `json:"product"`
	SKU      *string  `json:"sku"`
	Movement *string  `json:"movement"`
	Quantity *float64 `json:"quantity"`
	User     *string  `json:"user"`
	Date     *string  `json:"date"`
}

// MovementListResponse lista de movimientos.
type MovementListResponse struct {
	Movements []entity.Movement `json:"movements"`
}

// NormalizeDatesResponse resultado del trabajo masivo de normalización.
type NormalizeDatesResponse struct {
	Ok      bool `json:"ok"`
	Updated int  `json:"updated"`
}
