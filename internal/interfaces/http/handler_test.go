package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/apetitox-inventario/internal/application/dto"
	"github.com/jhoicas/apetitox-inventario/internal/application/inventory"
	"github.com/jhoicas/apetitox-inventario/internal/domain"
	"github.com/jhoicas/apetitox-inventario/internal/domain/entity"
	"github.com/jhoicas/apetitox-inventario/internal/domain/repository"
	apphttp "github.com/jhoicas/apetitox-inventario/internal/interfaces/http"
	"github.com/jhoicas/apetitox-inventario/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs
// ──────────────────────────────────────────────────────────────────────────────

type stubReceiver struct {
	got inventory.ReceiveInput
	id  string
	err error
}

func (s *stubReceiver) Receive(_ context.Context, in inventory.ReceiveInput) (string, error) {
	s.got = in
	return s.id, s.err
}

type stubRegistrar struct {
	got inventory.BatchInput
	id  string
	err error
}

func (s *stubRegistrar) Register(_ context.Context, in inventory.BatchInput) (string, error) {
	s.got = in
	return s.id, s.err
}

type stubQuery struct {
	material  *entity.Material
	entries   []entity.KardexEntry
	pdf       []byte
	err       error
	gotFilter repository.KardexFilter
}

func (s *stubQuery) Stock(_ context.Context, _ string) (*entity.Material, error) {
	if s.material == nil {
		return nil, domain.ErrMaterialNotFound
	}
	return s.material, nil
}

func (s *stubQuery) Kardex(_ context.Context, f repository.KardexFilter) ([]entity.KardexEntry, error) {
	s.gotFilter = f
	return s.entries, s.err
}

func (s *stubQuery) KardexPDF(_ context.Context, f repository.KardexFilter) ([]byte, error) {
	s.gotFilter = f
	return s.pdf, s.err
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	app      *fiber.App
	receiver *stubReceiver
	batches  *stubRegistrar
	query    *stubQuery
	logs     *bytes.Buffer
}

func newFixture(t *testing.T, db apphttp.Pinger) *fixture {
	t.Helper()
	f := &fixture{
		receiver: &stubReceiver{id: "mov-1"},
		batches:  &stubRegistrar{id: "lote-1"},
		query:    &stubQuery{},
		logs:     &bytes.Buffer{},
	}
	f.app = fiber.New()
	apphttp.Router(f.app, apphttp.RouterDeps{
		AppName:  "apetitox-test",
		Receiver: f.receiver,
		Batches:  f.batches,
		Query:    f.query,
		DB:       db,
		Log:      logger.New(logger.Config{Env: "test", Level: "info", Output: f.logs}),
	})
	return f
}

func (f *fixture) do(t *testing.T, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decodeError(t *testing.T, raw []byte) dto.ErrorResponse {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &e), string(raw))
	return e
}

// ──────────────────────────────────────────────────────────────────────────────
// Ingreso
// ──────────────────────────────────────────────────────────────────────────────

func TestIngreso_OK(t *testing.T) {
	f := newFixture(t, nil)
	resp, raw := f.do(t, http.MethodPost, "/inventory/ingreso",
		`{"material_sku":"FLOUR","cantidad":50,"costo_unit":"5.25","referencia":"FAC-9"}`)

	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var out dto.IngresoResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, out.OK)
	assert.Equal(t, "mov-1", out.MovID)

	assert.Equal(t, "FLOUR", f.receiver.got.MaterialSKU)
	assert.True(t, f.receiver.got.Quantity.Equal(decimal.NewFromInt(50)))
	assert.True(t, f.receiver.got.UnitCost.Equal(decimal.RequireFromString("5.25")))
	require.NotNil(t, f.receiver.got.Reference)
	assert.Equal(t, "FAC-9", *f.receiver.got.Reference)
	assert.Nil(t, f.receiver.got.UserID, "user_id ausente debe quedar nil")
}

func TestIngreso_MaterialNotFound(t *testing.T) {
	f := newFixture(t, nil)
	f.receiver.err = domain.ErrMaterialNotFound
	resp, raw := f.do(t, http.MethodPost, "/inventory/ingreso", `{"material_sku":"NOPE","cantidad":1,"costo_unit":1}`)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	e := decodeError(t, raw)
	assert.Equal(t, "NOT_FOUND", e.Code)
	assert.Equal(t, "Material no encontrado", e.Message)
}

func TestIngreso_MissingSKU(t *testing.T) {
	f := newFixture(t, nil)
	resp, raw := f.do(t, http.MethodPost, "/inventory/ingreso", `{"cantidad":1,"costo_unit":1}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, raw).Code)
	assert.Empty(t, f.receiver.got.MaterialSKU, "no debe llegar al caso de uso")
}

func TestIngreso_MissingQuantityOrCost(t *testing.T) {
	f := newFixture(t, nil)
	for _, body := range []string{
		`{"material_sku":"FLOUR"}`,
		`{"material_sku":"FLOUR","costo_unit":2}`,
		`{"material_sku":"FLOUR","cantidad":10}`,
	} {
		resp, raw := f.do(t, http.MethodPost, "/inventory/ingreso", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.Equal(t, "VALIDATION", decodeError(t, raw).Code, body)
	}
	assert.Empty(t, f.receiver.got.MaterialSKU, "no debe llegar al caso de uso")
}

func TestIngreso_ExplicitZeroCostIsAccepted(t *testing.T) {
	f := newFixture(t, nil)
	resp, raw := f.do(t, http.MethodPost, "/inventory/ingreso", `{"material_sku":"FLOUR","cantidad":5,"costo_unit":0}`)

	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.True(t, f.receiver.got.UnitCost.IsZero())
}

func TestIngreso_InvalidJSON(t *testing.T) {
	f := newFixture(t, nil)
	resp, raw := f.do(t, http.MethodPost, "/inventory/ingreso", `{"material_sku":`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, raw).Code)
}

func TestIngreso_StoreConflictIs500AndLoggedAsRetryable(t *testing.T) {
	f := newFixture(t, nil)
	f.receiver.err = fmt.Errorf("%w: %w", domain.ErrRetryable, errors.New("deadlock detected"))
	resp, raw := f.do(t, http.MethodPost, "/inventory/ingreso", `{"material_sku":"FLOUR","cantidad":1,"costo_unit":1}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	e := decodeError(t, raw)
	assert.Equal(t, "INTERNAL", e.Code)
	assert.Contains(t, e.Message, "deadlock detected")
	assert.Contains(t, f.logs.String(), `"retryable":true`)
}

func TestIngreso_InvalidInputFromUseCase(t *testing.T) {
	f := newFixture(t, nil)
	f.receiver.err = domain.ErrInvalidInput
	resp, raw := f.do(t, http.MethodPost, "/inventory/ingreso", `{"material_sku":"FLOUR","cantidad":1,"costo_unit":1}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, raw).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lote
// ──────────────────────────────────────────────────────────────────────────────

func TestLote_OK(t *testing.T) {
	f := newFixture(t, nil)
	resp, raw := f.do(t, http.MethodPost, "/production/lote",
		`{"producto_sku":"PAN","cantidad_producida":5,"lote":"L-001","user_id":"u-7"}`)

	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var out dto.LoteResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, out.OK)
	assert.Equal(t, "lote-1", out.LoteID)

	assert.Equal(t, "PAN", f.batches.got.ProductSKU)
	assert.Equal(t, "L-001", f.batches.got.Lot)
	assert.True(t, f.batches.got.Merma.IsZero(), "merma por defecto 0")
	require.NotNil(t, f.batches.got.UserID)
	assert.Equal(t, "u-7", *f.batches.got.UserID)
}

func TestLote_ProductNotFound(t *testing.T) {
	f := newFixture(t, nil)
	f.batches.err = domain.ErrProductNotFound
	resp, raw := f.do(t, http.MethodPost, "/production/lote", `{"producto_sku":"X","cantidad_producida":1,"lote":"L"}`)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	e := decodeError(t, raw)
	assert.Equal(t, "NOT_FOUND", e.Code)
	assert.Equal(t, "Producto no encontrado", e.Message)
}

func TestLote_InconsistentBOMIs500(t *testing.T) {
	f := newFixture(t, nil)
	f.batches.err = fmt.Errorf("%w: material m-9", domain.ErrBOMInconsistent)
	resp, raw := f.do(t, http.MethodPost, "/production/lote", `{"producto_sku":"PAN","cantidad_producida":1,"lote":"L"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", decodeError(t, raw).Code)
}

func TestLote_MissingQuantity(t *testing.T) {
	f := newFixture(t, nil)
	resp, raw := f.do(t, http.MethodPost, "/production/lote", `{"producto_sku":"PAN","lote":"L"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, raw).Code)
	assert.Empty(t, f.batches.got.ProductSKU, "no debe llegar al caso de uso")
}

func TestLote_MissingLote(t *testing.T) {
	f := newFixture(t, nil)
	resp, raw := f.do(t, http.MethodPost, "/production/lote", `{"producto_sku":"PAN","cantidad_producida":1}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, raw).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock y Kardex
// ──────────────────────────────────────────────────────────────────────────────

func TestStock_NotFound(t *testing.T) {
	f := newFixture(t, nil)
	resp, raw := f.do(t, http.MethodGet, "/inventory/stock?material_sku=NOPE", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, raw).Code)
}

func TestStock_MissingParam(t *testing.T) {
	f := newFixture(t, nil)
	resp, _ := f.do(t, http.MethodGet, "/inventory/stock", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStock_OK(t *testing.T) {
	f := newFixture(t, nil)
	f.query.material = &entity.Material{
		SKU: "FLOUR", Name: "Harina", Unit: "kg",
		StockActual: decimal.NewFromInt(150), AvgCost: decimal.NewFromInt(3),
	}
	resp, raw := f.do(t, http.MethodGet, "/inventory/stock?material_sku=FLOUR", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.StockResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "FLOUR", out.SKU)
	assert.Equal(t, "kg", out.Unidad)
	assert.True(t, out.StockActual.Equal(decimal.NewFromInt(150)))
	assert.True(t, out.AvgCost.Equal(decimal.NewFromInt(3)))
}

func TestKardex_UnknownSKUIsEmptyList(t *testing.T) {
	f := newFixture(t, nil)
	f.query.entries = []entity.KardexEntry{}
	resp, raw := f.do(t, http.MethodGet, "/reports/kardex?material_sku=NOPE", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "NOPE", body["material"])
	assert.Equal(t, []any{}, body["movimientos"])
}

func TestKardex_PassesBoundsAndRendersNullReference(t *testing.T) {
	f := newFixture(t, nil)
	f.query.entries = []entity.KardexEntry{{
		CreatedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		Type:      entity.MovementTypeIN,
		Quantity:  decimal.NewFromInt(100),
		UnitCost:  decimal.NewFromInt(2),
		Origin:    entity.OriginPurchase,
	}}
	resp, raw := f.do(t, http.MethodGet, "/reports/kardex?material_sku=FLOUR&desde=2024-03-01", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, f.query.gotFilter.Desde)
	assert.Equal(t, "2024-03-01", *f.query.gotFilter.Desde)
	assert.Nil(t, f.query.gotFilter.Hasta)

	var out dto.KardexResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Movimientos, 1)
	assert.Equal(t, "IN", out.Movimientos[0].Tipo)
	assert.Equal(t, "compra", out.Movimientos[0].Origen)
	assert.Contains(t, string(raw), `"referencia":null`)
}

func TestKardexPDF(t *testing.T) {
	f := newFixture(t, nil)
	f.query.pdf = []byte("%PDF-1.3 fake")
	resp, raw := f.do(t, http.MethodGet, "/reports/kardex/pdf?material_sku=FLOUR", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "kardex-FLOUR.pdf")
	assert.Equal(t, "%PDF-1.3 fake", string(raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// Health
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	f := newFixture(t, nil)
	resp, raw := f.do(t, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.HealthResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, "apetitox-test", out.Service)
}

func TestHealthDB(t *testing.T) {
	resp, _ := newFixture(t, stubPinger{}).do(t, http.MethodGet, "/health/db", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = newFixture(t, stubPinger{err: errors.New("connection refused")}).do(t, http.MethodGet, "/health/db", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, _ = newFixture(t, nil).do(t, http.MethodGet, "/health/db", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
