package suppliers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainboard/chainboard/internal/orders"
	"github.com/chainboard/chainboard/internal/platform/httpx"
)

func newTestRouter(t *testing.T) (*chi.Mux, *Repository, *orders.Repository) {
	t.Helper()
	repo := NewRepository()
	orderRepo := orders.NewRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(logger, NewService(repo), orders.NewService(orderRepo))
	r := chi.NewRouter()
	r.Route("/suppliers", h.MountRoutes)
	return r, repo, orderRepo
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func seedSupplier(repo *Repository) Supplier {
	return repo.Create(Supplier{
		Name: "Acme Corp", Category: "Electronics Manufacturer", Status: StatusActive,
		Location: "New York, USA", ContactName: "John Reynolds",
		ContactEmail: "john.reynolds@acmecorp.com", ContactPhone: "+1 (212) 555-1234",
		OrdersThisMonth: 32, OnTimeDelivery: 96.4, TotalSpend: 128450, ProductCategories: 3,
		LogoInitials: "AC", LogoColor: "blue",
	})
}

func TestCreateSupplierValidation(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/suppliers",
		`{"name":"Acme Corp","status":"dormant","contactEmail":"not-an-email"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body httpx.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Validation error", body.Message)

	fields := make(map[string]string)
	for _, fe := range body.Errors {
		fields[fe.Field] = fe.Rule
	}
	assert.Equal(t, "oneof", fields["status"])
	assert.Equal(t, "email", fields["contactEmail"])
	assert.Equal(t, "required", fields["category"])
}

func TestDeleteThenGetIs404(t *testing.T) {
	r, repo, _ := newTestRouter(t)
	s := seedSupplier(repo)

	rec := doJSON(t, r, http.MethodDelete, "/suppliers/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/suppliers/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	var body httpx.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Supplier not found", body.Message)

	// The counter moves on; the deleted id never comes back.
	next := seedSupplier(repo)
	assert.Greater(t, next.ID, s.ID)
}

func TestListOrdersForMissingSupplierIs404(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/suppliers/999/orders", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	var body httpx.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Supplier not found", body.Message)
}

func TestListOrdersFiltersBySupplier(t *testing.T) {
	r, repo, orderRepo := newTestRouter(t)
	seedSupplier(repo)

	_, err := orderRepo.Create(orders.Order{OrderID: "#ORD-1", SupplierID: 1, Date: "2023-08-12", Time: "09:25 AM", Status: orders.StatusDelivered, Amount: 100, Products: "Widgets (x10)"})
	require.NoError(t, err)
	_, err = orderRepo.Create(orders.Order{OrderID: "#ORD-2", SupplierID: 2, Date: "2023-08-13", Time: "10:00 AM", Status: orders.StatusPending, Amount: 200, Products: "Widgets (x20)"})
	require.NoError(t, err)

	rec := doJSON(t, r, http.MethodGet, "/suppliers/1/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []orders.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "#ORD-1", got[0].OrderID)
}

func TestUpdateSupplierPartialMerge(t *testing.T) {
	r, repo, _ := newTestRouter(t)
	seedSupplier(repo)

	rec := doJSON(t, r, http.MethodPut, "/suppliers/1", `{"status":"suspended"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got Supplier
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, StatusSuspended, got.Status)
	assert.Equal(t, "Acme Corp", got.Name)
	assert.Equal(t, 96.4, got.OnTimeDelivery)
}

func TestNonNumericSupplierIDIs400(t *testing.T) {
	r, _, _ := newTestRouter(t)

	for _, path := range []string{"/suppliers/abc", "/suppliers/abc/orders"} {
		rec := doJSON(t, r, http.MethodGet, path, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, path)
		var body httpx.ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Invalid supplier ID", body.Message)
	}
}
