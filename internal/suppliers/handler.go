package suppliers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/chainboard/chainboard/internal/orders"
	"github.com/chainboard/chainboard/internal/platform/httpx"
	"github.com/chainboard/chainboard/internal/shared"
)

// OrderLister returns the orders referencing a supplier id.
type OrderLister interface {
	ListBySupplier(ctx context.Context, supplierID int) []orders.Order
}

// Handler wires the supplier HTTP endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	orders   OrderLister
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service, orders OrderLister) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		orders:   orders,
		validate: httpx.NewValidator(),
	}
}

// MountRoutes registers supplier routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Show)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Get("/{id}/orders", h.ListOrders)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.List(r.Context()))
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid supplier ID")
		return
	}
	supplier, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "Supplier not found")
		return
	}
	httpx.JSON(w, http.StatusOK, supplier)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSupplierRequest
	if err := httpx.Bind(r, h.validate, &req); err != nil {
		httpx.RespondBindError(w, err)
		return
	}
	supplier, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create supplier failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Failed to create supplier")
		return
	}
	httpx.JSON(w, http.StatusCreated, supplier)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid supplier ID")
		return
	}
	var req UpdateSupplierRequest
	if err := httpx.Bind(r, h.validate, &req); err != nil {
		httpx.RespondBindError(w, err)
		return
	}
	supplier, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Supplier not found")
			return
		}
		h.logger.Error("update supplier failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Failed to update supplier")
		return
	}
	httpx.JSON(w, http.StatusOK, supplier)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid supplier ID")
		return
	}
	if !h.service.Delete(r.Context(), id) {
		httpx.Error(w, http.StatusNotFound, "Supplier not found")
		return
	}
	httpx.NoContent(w)
}

// ListOrders returns the orders referencing the supplier. A missing supplier
// is a 404, never an empty list.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid supplier ID")
		return
	}
	if _, err := h.service.Get(r.Context(), id); err != nil {
		httpx.Error(w, http.StatusNotFound, "Supplier not found")
		return
	}
	httpx.JSON(w, http.StatusOK, h.orders.ListBySupplier(r.Context(), id))
}
