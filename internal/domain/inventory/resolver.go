// Package inventory contiene el cálculo puro del stock efectivo.
//
// El stock mostrado nunca se guarda: siempre es
//
//	efectivo = stock base + Σ(cantidades con signo de los movimientos del SKU)
//
// Resolve es determinista, sin efectos y total sobre sus entradas; se
// recalcula completo en cada lectura (O(productos + movimientos), suficiente
// para el volumen esperado) en vez de mantener un saldo incremental.
package inventory

import (
	"math"

	"github.com/invopos/inventario-lite/internal/domain/entity"
)

// Status clasifica el stock efectivo de un producto.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusRestockSoon Status = "Restock Soon"
	StatusOutOfStock  Status = "Out of Stock"
)

// Umbral de reposición: con exactamente 5 unidades el producto ya está en
// "Restock Soon"; con exactamente 0 está "Out of Stock".
const restockThreshold = 5

// ResolvedProduct es un producto anotado con sus campos derivados.
type ResolvedProduct struct {
	entity.Product
	EffectiveStock float64 `json:"effectiveStock"`
	Status         Status  `json:"status"`
}

// DeltaBySKU acumula la cantidad neta con signo por SKU. Los movimientos que
// referencian SKUs sin producto también entran al mapa: su delta queda sin
// usar hasta que se cree un producto con ese SKU (enganche retroactivo).
// El orden de los movimientos no afecta el resultado.
func DeltaBySKU(movements []entity.Movement) map[string]float64 {
	delta := make(map[string]float64, len(movements))
	for _, m := range movements {
		delta[m.SKU] += m.Delta()
	}
	return delta
}

// Classify aplica los límites exactos del estado derivado.
func Classify(effective float64) Status {
	switch {
	case effective <= 0:
		return StatusOutOfStock
	case effective <= restockThreshold:
		return StatusRestockSoon
	default:
		return StatusAvailable
	}
}

// Resolve combina catálogo y libro de movimientos en la vista con stock
// efectivo y estado. Los demás campos del producto quedan intactos. Un delta
// acumulado no finito (datos corruptos que la validación no alcanzó a
// rechazar) contribuye 0 para que la función siga siendo total.
func Resolve(products []entity.Product, movements []entity.Movement) []ResolvedProduct {
	delta := DeltaBySKU(movements)
	out := make([]ResolvedProduct, 0, len(products))
	for _, p := range products {
		d := delta[p.SKU]
		if math.IsNaN(d) || math.IsInf(d, 0) {
			d = 0
		}
		effective := p.Stock + d
		out = append(out, ResolvedProduct{
			Product:        p,
			EffectiveStock: effective,
			Status:         Classify(effective),
		})
	}
	return out
}
