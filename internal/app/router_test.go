package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainboard/chainboard/internal/inventory"
	"github.com/chainboard/chainboard/internal/observability"
	"github.com/chainboard/chainboard/internal/orders"
	"github.com/chainboard/chainboard/internal/platform/httpx"
	"github.com/chainboard/chainboard/internal/seed"
	"github.com/chainboard/chainboard/internal/stats"
	"github.com/chainboard/chainboard/internal/suppliers"
	"github.com/chainboard/chainboard/internal/users"
	"github.com/chainboard/chainboard/internal/workflow"
)

// newSeededRouter assembles the full application router the same way main does,
// loaded with the bootstrap dataset.
func newSeededRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &Config{
		AppEnv:             "test",
		AppRequestTimeout:  0,
		RateLimitPerMinute: 10000,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	supplierRepo := suppliers.NewRepository()
	orderRepo := orders.NewRepository()
	inventoryRepo := inventory.NewRepository()
	workflowRepo := workflow.NewRepository()
	statsRepo := stats.NewRepository()
	userService := users.NewService(users.NewRepository())

	require.NoError(t, seed.Load(context.Background(), seed.Stores{
		Suppliers: supplierRepo,
		Orders:    orderRepo,
		Inventory: inventoryRepo,
		Workflow:  workflowRepo,
		Stats:     statsRepo,
		Users:     userService,
	}))

	orderService := orders.NewService(orderRepo)
	return NewRouter(RouterParams{
		Logger:           logger,
		Config:           cfg,
		StatsHandler:     stats.NewHandler(logger, statsRepo),
		SuppliersHandler: suppliers.NewHandler(logger, suppliers.NewService(supplierRepo), orderService),
		OrdersHandler:    orders.NewHandler(logger, orderService),
		InventoryHandler: inventory.NewHandler(logger, inventory.NewService(inventoryRepo)),
		WorkflowHandler:  workflow.NewHandler(logger, workflow.NewService(workflowRepo)),
		Metrics:          observability.NewMetrics(),
	})
}

func request(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	h := newSeededRouter(t)

	rec := request(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = request(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestStatisticsRoundTrip(t *testing.T) {
	h := newSeededRouter(t)

	rec := request(t, h, http.MethodGet, "/api/statistics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got stats.Statistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 3542, got.TotalOrders)

	rec = request(t, h, http.MethodPut, "/api/statistics", `{"totalOrders":3600}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 3600, got.TotalOrders)
	assert.Equal(t, 94.2, got.OnTimeDelivery)
}

func TestInventorySKULookup(t *testing.T) {
	h := newSeededRouter(t)

	rec := request(t, h, http.MethodGet, "/api/inventory/sku/PROC-1001", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var item inventory.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "Intel i7 Processor", item.Name)

	rec = request(t, h, http.MethodGet, "/api/inventory/sku/NOPE-0000", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	var body httpx.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Inventory item not found", body.Message)
}

func TestSupplierOrdersEndpoint(t *testing.T) {
	h := newSeededRouter(t)

	rec := request(t, h, http.MethodGet, "/api/suppliers/1/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []orders.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 3)

	rec = request(t, h, http.MethodGet, "/api/suppliers/999/orders", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSupplierDeleteLeavesOrdersBehind(t *testing.T) {
	h := newSeededRouter(t)

	rec := request(t, h, http.MethodDelete, "/api/suppliers/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = request(t, h, http.MethodGet, "/api/suppliers/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	// Orders keep their supplierId; the reference is soft.
	rec = request(t, h, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []orders.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 6)
}

func TestDuplicateOrderIDIs409(t *testing.T) {
	h := newSeededRouter(t)

	rec := request(t, h, http.MethodPost, "/api/orders",
		`{"orderId":"#ORD-7352","supplierId":1,"date":"2023-08-20","time":"09:00 AM","status":"pending","amount":50,"products":"Widgets (x5)"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	var body httpx.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Order ID already exists", body.Message)
}

func TestWorkflowGraphLifecycle(t *testing.T) {
	h := newSeededRouter(t)

	// A node created without a key continues the seeded sequence.
	rec := request(t, h, http.MethodPost, "/api/workflow/nodes",
		`{"type":"customer","label":"Walk-in","positionX":700,"positionY":400}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var node workflow.Node
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &node))
	assert.Equal(t, 6, node.ID)
	assert.Equal(t, "node-6", node.NodeID)

	// Deleting a node leaves its edges dangling.
	rec = request(t, h, http.MethodDelete, "/api/workflow/nodes/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = request(t, h, http.MethodGet, "/api/workflow/edges", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var edges []workflow.Edge
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &edges))
	require.Len(t, edges, 4)
	assert.Equal(t, "node-1", edges[0].Source)
}
