package inventory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invopos/inventario-lite/internal/domain/entity"
	"github.com/invopos/inventario-lite/internal/domain/inventory"
)

func producto(sku string, stock float64) entity.Product {
	return entity.Product{SKU: sku, Nombre: "Producto " + sku, Categoria: "GENERAL", Stock: stock}
}

func entrada(sku string, qty float64) entity.Movement {
	return entity.Movement{ID: "m-in-" + sku, SKU: sku, Product: sku, Movement: entity.MovementStockIn, Quantity: qty, User: "System"}
}

func salida(sku string, qty float64) entity.Movement {
	return entity.Movement{ID: "m-out-" + sku, SKU: sku, Product: sku, Movement: entity.MovementStockOut, Quantity: qty, User: "System"}
}

func TestClassify_LimitesExactos(t *testing.T) {
	cases := []struct {
		effective float64
		want      inventory.Status
	}{
		{-3, inventory.StatusOutOfStock},
		{0, inventory.StatusOutOfStock}, // exactamente 0 es Out of Stock, no Restock Soon
		{1, inventory.StatusRestockSoon},
		{3, inventory.StatusRestockSoon},
		{5, inventory.StatusRestockSoon}, // exactamente 5 sigue siendo Restock Soon
		{6, inventory.StatusAvailable},
		{120, inventory.StatusAvailable},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, inventory.Classify(c.effective), "efectivo=%v", c.effective)
	}
}

func TestResolve_StockBaseMasDelta(t *testing.T) {
	// Base 10, una salida de 7: efectivo 3, que cae en 1..5.
	products := []entity.Product{producto("A", 10)}
	movements := []entity.Movement{salida("A", 7)}

	out := inventory.Resolve(products, movements)
	require.Len(t, out, 1)
	assert.Equal(t, 3.0, out[0].EffectiveStock)
	assert.Equal(t, inventory.StatusRestockSoon, out[0].Status, "3 unidades deben leer Restock Soon, no Available")
	assert.Equal(t, 10.0, out[0].Stock, "el stock base no se toca")
}

func TestResolve_OrdenDeMovimientosIrrelevante(t *testing.T) {
	products := []entity.Product{producto("A", 0)}
	m1 := entrada("A", 9)
	m2 := salida("A", 4)

	a := inventory.Resolve(products, []entity.Movement{m1, m2})
	b := inventory.Resolve(products, []entity.Movement{m2, m1})
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, a[0].EffectiveStock, b[0].EffectiveStock)
	assert.Equal(t, m1.Delta()+m2.Delta(), a[0].EffectiveStock, "el delta debe ser aditivo")
}

func TestResolve_SKUHuerfanoYEngancheRetroactivo(t *testing.T) {
	// Movimiento para un SKU sin producto: no aparece en la salida...
	movements := []entity.Movement{entrada("Z", 5)}
	out := inventory.Resolve(nil, movements)
	assert.Empty(t, out, "un SKU sin producto no produce filas")

	// ...pero al crear el producto después, el delta aplica retroactivamente.
	out = inventory.Resolve([]entity.Product{producto("Z", 0)}, movements)
	require.Len(t, out, 1)
	assert.Equal(t, 5.0, out[0].EffectiveStock)
	assert.Equal(t, inventory.StatusRestockSoon, out[0].Status)
}

func TestResolve_DeltaNoFinitoContribuyeCero(t *testing.T) {
	// Un quantity corrupto que la validación no alcanzó a rechazar no debe
	// propagar NaN a la vista.
	products := []entity.Product{producto("A", 7)}
	corrupt := entrada("A", math.NaN())

	out := inventory.Resolve(products, []entity.Movement{corrupt})
	require.Len(t, out, 1)
	assert.Equal(t, 7.0, out[0].EffectiveStock)
	assert.Equal(t, inventory.StatusAvailable, out[0].Status)
}

func TestDeltaBySKU_AcumulaPorSKU(t *testing.T) {
	movements := []entity.Movement{
		entrada("A", 10),
		salida("A", 3),
		entrada("B", 2),
	}
	delta := inventory.DeltaBySKU(movements)
	assert.Equal(t, 7.0, delta["A"])
	assert.Equal(t, 2.0, delta["B"])
	assert.Zero(t, delta["C"])
}
