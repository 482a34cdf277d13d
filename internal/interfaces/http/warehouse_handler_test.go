package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/fulfillment"
	"github.com/jhoicas/almacen-api/internal/domain"
	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubService implementación fija de fulfillment.Service; registra el último
// input recibido.
type stubService struct {
	id   int
	err  error
	got  fulfillment.Input
	hits int
}

func (s *stubService) FulfillOrder(_ context.Context, in fulfillment.Input) (int, error) {
	s.got = in
	s.hits++
	return s.id, s.err
}

const validBody = `{
	"idProduct": 3,
	"idWarehouse": 1,
	"amount": 10,
	"createdAt": "2024-01-02T00:00:00Z",
	"price": 5.00,
	"idOrder": 7
}`

func buildTestApp(svc, proc fulfillment.Service) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Fulfillment: svc, Proc: proc})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /warehouse/add-product
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduct_Exitoso(t *testing.T) {
	svc := &stubService{id: 42}
	app := buildTestApp(svc, &stubService{})

	resp := postJSON(t, app, "/warehouse/add-product", validBody)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]int
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &out))
	assert.Equal(t, 42, out["idProductWarehouse"])

	// Mapeo del body al input del flujo
	assert.Equal(t, 3, svc.got.ProductID)
	assert.Equal(t, 1, svc.got.WarehouseID)
	assert.Equal(t, 7, svc.got.OrderID)
	assert.Equal(t, 10, svc.got.Amount)
	assert.True(t, svc.got.Price.Equal(decimal.NewFromFloat(5.00)))
	assert.Equal(t, "2024-01-02T00:00:00Z", svc.got.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
}

func TestAddProduct_CantidadInvalida_Retorna400(t *testing.T) {
	svc := &stubService{err: domain.ErrInvalidAmount}
	app := buildTestApp(svc, &stubService{})

	resp := postJSON(t, app, "/warehouse/add-product", validBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Amount must be greater than 0.", readBody(t, resp))
}

func TestAddProduct_NoEncontrados_Retornan404(t *testing.T) {
	cases := []struct {
		name string
		err  error
		body string
	}{
		{"producto", domain.ErrProductNotFound, "Product not found."},
		{"bodega", domain.ErrWarehouseNotFound, "Warehouse not found."},
		{"orden", domain.ErrOrderNotEligible, "Order not found or already fulfilled."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := buildTestApp(&stubService{err: tc.err}, &stubService{})
			resp := postJSON(t, app, "/warehouse/add-product", validBody)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.Equal(t, tc.body, readBody(t, resp))
		})
	}
}

func TestAddProduct_FallaTransaccion_Retorna500(t *testing.T) {
	svc := &stubService{err: assert.AnError}
	app := buildTestApp(svc, &stubService{})

	resp := postJSON(t, app, "/warehouse/add-product", validBody)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "INTERNAL")
}

func TestAddProduct_BodyInvalido_Retorna400(t *testing.T) {
	svc := &stubService{}
	app := buildTestApp(svc, &stubService{})

	resp := postJSON(t, app, "/warehouse/add-product", `{"idProduct": "no-es-numero"`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, svc.hits, "el servicio no debe invocarse con body inválido")
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /warehouse/add-product-proc
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProductProc_Exitoso(t *testing.T) {
	proc := &stubService{id: 99}
	app := buildTestApp(&stubService{}, proc)

	resp := postJSON(t, app, "/warehouse/add-product-proc", validBody)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]int
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &out))
	assert.Equal(t, 99, out["idProductWarehouse"])
	assert.Equal(t, 1, proc.hits)
}

// El texto del error de la base se expone tal cual, con estado 400.
func TestAddProductProc_ErrorDeBase_TextoVerbatim(t *testing.T) {
	proc := &stubService{err: &domain.ProcedureError{Message: "Order not found or already fulfilled."}}
	app := buildTestApp(&stubService{}, proc)

	resp := postJSON(t, app, "/warehouse/add-product-proc", validBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Order not found or already fulfilled.", readBody(t, resp))
}

func TestAddProductProc_CantidadInvalida_Retorna400(t *testing.T) {
	proc := &stubService{err: domain.ErrInvalidAmount}
	app := buildTestApp(&stubService{}, proc)

	resp := postJSON(t, app, "/warehouse/add-product-proc", validBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Amount must be greater than 0.", readBody(t, resp))
}
