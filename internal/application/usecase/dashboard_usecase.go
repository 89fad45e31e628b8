package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/invopos/inventario-lite/internal/application/dto"
	"github.com/invopos/inventario-lite/internal/domain/inventory"
	"github.com/invopos/inventario-lite/internal/domain/repository"
)

// DashboardUseCase arma el resumen del tablero a partir del catálogo resuelto
// y el libro de movimientos. Todo derivado en la lectura, nada cacheado.
type DashboardUseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository, movements repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{products: products, movements: movements, now: time.Now}
}

// Summary calcula los KPIs del tablero.
func (uc *DashboardUseCase) Summary() (*dto.DashboardSummaryResponse, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}

	resolved := inventory.Resolve(products, movements)
	out := &dto.DashboardSummaryResponse{
		TotalProducts:  len(resolved),
		InventoryValue: decimal.Zero,
	}

	categorias := make(map[string]struct{})
	for _, p := range resolved {
		if p.Categoria != "" {
			categorias[p.Categoria] = struct{}{}
		}
		switch p.Status {
		case inventory.StatusAvailable:
			out.Available++
		case inventory.StatusRestockSoon:
			out.RestockSoon++
		case inventory.StatusOutOfStock:
			out.OutOfStock++
		}
		if p.EffectiveStock > 0 {
			out.InventoryValue = out.InventoryValue.Add(p.Precio.Mul(decimal.NewFromFloat(p.EffectiveStock)))
		}
	}
	out.Categories = len(categorias)

	hoy := uc.now().Local()
	y, m, d := hoy.Date()
	inicio := time.Date(y, m, d, 0, 0, 0, 0, hoy.Location())
	fin := inicio.AddDate(0, 0, 1)
	for _, mov := range movements {
		t, err := time.Parse(time.RFC3339, mov.Date)
		if err != nil {
			continue // fechas legadas sin normalizar no cuentan para "hoy"
		}
		local := t.In(hoy.Location())
		if !local.Before(inicio) && local.Before(fin) {
			out.MovementsToday++
		}
	}
	return out, nil
}
