package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invopos/inventario-lite/internal/application/usecase"
	"github.com/invopos/inventario-lite/internal/domain/entity"
	"github.com/invopos/inventario-lite/internal/infrastructure/jsonfile"
	httpapi "github.com/invopos/inventario-lite/internal/interfaces/http"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()
	products := jsonfile.NewProductRepository(filepath.Join(dir, "productos.json"))
	movements := jsonfile.NewMovementRepository(filepath.Join(dir, "movements.json"))

	app := fiber.New()
	httpapi.Router(app, httpapi.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(products, movements),
		MovementUC:  usecase.NewMovementUseCase(movements),
		DashboardUC: usecase.NewDashboardUseCase(products, movements),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func TestPostMovement_IgnoraIdDelCliente(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/movements", fiber.Map{
		"id":       "id-inventado-por-el-cliente",
		"product":  "Bolsa Negra",
		"sku":      "BOL-001",
		"movement": entity.MovementStockIn,
		"quantity": 10,
		"user":     "Admin",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var created entity.Movement
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "id-inventado-por-el-cliente", created.ID,
		"el id siempre lo asigna el servidor")
	assert.NotEmpty(t, created.Date, "sin date, el servidor pone la hora actual")
}

func TestPostMovement_PayloadInvalido(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/movements", fiber.Map{
		"product":  "Bolsa",
		"sku":      "BOL-001",
		"movement": "Stock Sideways",
		"quantity": 10,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestPutMovement_IdInexistente(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, fiber.MethodPut, "/api/movements/fantasma", fiber.Map{
		"quantity": 3,
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestDeleteMovement_DosVecesResponde200(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/movements", fiber.Map{
		"product":  "Bolsa",
		"sku":      "BOL-001",
		"movement": entity.MovementStockOut,
		"quantity": 2,
	})
	require.Equal(t, fiber.StatusCreated, status)
	var created entity.Movement
	require.NoError(t, json.Unmarshal(body, &created))

	status, _ = doJSON(t, app, fiber.MethodDelete, "/api/movements/"+created.ID, nil)
	assert.Equal(t, fiber.StatusOK, status)
	status, body = doJSON(t, app, fiber.MethodDelete, "/api/movements/"+created.ID, nil)
	assert.Equal(t, fiber.StatusOK, status, "el segundo borrado también responde 200")
	assert.Contains(t, string(body), `"ok":true`)
}

func TestPostProduct_CampoFaltante(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{
		"sku":    "BOL-001",
		"nombre": "Bolsa",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(body), "categoria")
}

func TestGetProduct_Inexistente(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, fiber.MethodGet, "/api/products/NADIE", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestFlujoCompleto_StockEfectivoYOrden(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{
		"sku": "BOL-001", "nombre": "Bolsa Negra", "categoria": "BOLSAS", "stock": 10, "precio": 2.5,
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = doJSON(t, app, fiber.MethodPost, "/api/movements", fiber.Map{
		"product": "Bolsa Negra", "sku": "BOL-001", "movement": entity.MovementStockOut,
		"quantity": 7, "date": "2025-01-01T10:00:00Z",
	})
	require.Equal(t, fiber.StatusCreated, status)
	status, _ = doJSON(t, app, fiber.MethodPost, "/api/movements", fiber.Map{
		"product": "Bolsa Negra", "sku": "BOL-001", "movement": entity.MovementStockIn,
		"quantity": 1, "date": "2025-02-01T10:00:00Z",
	})
	require.Equal(t, fiber.StatusCreated, status)

	// 10 - 7 + 1 = 4 -> Restock Soon.
	status, body := doJSON(t, app, fiber.MethodGet, "/api/products/BOL-001", nil)
	require.Equal(t, fiber.StatusOK, status)
	var resolved struct {
		EffectiveStock float64 `json:"effectiveStock"`
		Status         string  `json:"status"`
		Stock          float64 `json:"stock"`
	}
	require.NoError(t, json.Unmarshal(body, &resolved))
	assert.Equal(t, 4.0, resolved.EffectiveStock)
	assert.Equal(t, "Restock Soon", resolved.Status)
	assert.Equal(t, 10.0, resolved.Stock, "el stock base persiste sin alterar")

	// El listado sale con el más reciente primero.
	status, body = doJSON(t, app, fiber.MethodGet, "/api/movements", nil)
	require.Equal(t, fiber.StatusOK, status)
	var listed struct {
		Movements []entity.Movement `json:"movements"`
	}
	require.NoError(t, json.Unmarshal(body, &listed))
	require.Len(t, listed.Movements, 2)
	assert.Equal(t, "2025-02-01T10:00:00Z", listed.Movements[0].Date)
}

func TestPutProduct_IgnoraStockEnElCuerpo(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{
		"sku": "BOL-001", "nombre": "Bolsa", "categoria": "BOLSAS", "stock": 12,
	})
	require.Equal(t, fiber.StatusCreated, status)

	// Un "stock" en el PUT de edición no tiene campo destino: se descarta.
	status, body := doJSON(t, app, fiber.MethodPut, "/api/products/BOL-001", fiber.Map{
		"nombre": "Bolsa Grande", "stock": 999,
	})
	require.Equal(t, fiber.StatusOK, status)
	var out struct {
		Productos []entity.Product `json:"productos"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Productos, 1)
	assert.Equal(t, "Bolsa Grande", out.Productos[0].Nombre)
	assert.Equal(t, 12.0, out.Productos[0].Stock)
}

func TestPutStock_FijaElEfectivoDeseado(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{
		"sku": "BOL-001", "nombre": "Bolsa", "categoria": "BOLSAS", "stock": 2,
	})
	require.Equal(t, fiber.StatusCreated, status)
	status, _ = doJSON(t, app, fiber.MethodPost, "/api/movements", fiber.Map{
		"product": "Bolsa", "sku": "BOL-001", "movement": entity.MovementStockIn, "quantity": 6,
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doJSON(t, app, fiber.MethodPut, "/api/products/BOL-001/stock", fiber.Map{
		"nombre": "Bolsa", "categoria": "BOLSAS", "stock": 9,
	})
	require.Equal(t, fiber.StatusOK, status)
	var out struct {
		Productos []entity.Product `json:"productos"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Productos, 1)
	assert.Equal(t, 3.0, out.Productos[0].Stock, "base = deseado - delta del libro")

	status, body = doJSON(t, app, fiber.MethodGet, "/api/products/BOL-001", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"effectiveStock":9`)
}

func TestNormalize_ReportaActualizados(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, fiber.MethodPost, "/api/movements", fiber.Map{
		"product": "Bolsa", "sku": "BOL-001", "movement": entity.MovementStockIn,
		"quantity": 1, "date": "2025-03-01T00:00:00Z",
	})
	require.Equal(t, fiber.StatusCreated, status)

	// Todo ya es canónico: la pasada no toca nada.
	status, body := doJSON(t, app, fiber.MethodPost, "/api/movements/normalize", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"updated":0`)
}

func TestDashboardSummary(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{
		"sku": "BOL-001", "nombre": "Bolsa", "categoria": "BOLSAS", "stock": 10, "precio": 2,
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doJSON(t, app, fiber.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, fiber.StatusOK, status)
	var out struct {
		TotalProducts  int         `json:"total_products"`
		Categories     int         `json:"categories"`
		Available      int         `json:"available"`
		InventoryValue json.Number `json:"inventory_value"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 1, out.TotalProducts)
	assert.Equal(t, 1, out.Categories)
	assert.Equal(t, 1, out.Available)
	assert.Equal(t, "20", out.InventoryValue.String())
}
