package inventory

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/chainboard/chainboard/internal/platform/httpx"
	"github.com/chainboard/chainboard/internal/shared"
)

// Handler wires the inventory HTTP endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: httpx.NewValidator()}
}

// MountRoutes registers inventory routes on the provided router. The static
// /sku prefix must win over /{id}, which chi guarantees.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/sku/{sku}", h.ShowBySKU)
	r.Get("/{id}", h.Show)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.List(r.Context()))
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid inventory item ID")
		return
	}
	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "Inventory item not found")
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *Handler) ShowBySKU(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetBySKU(r.Context(), chi.URLParam(r, "sku"))
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "Inventory item not found")
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := httpx.Bind(r, h.validate, &req); err != nil {
		httpx.RespondBindError(w, err)
		return
	}
	item, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, shared.ErrConflict) {
			httpx.Error(w, http.StatusConflict, "SKU already exists")
			return
		}
		h.logger.Error("create inventory item failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Failed to create inventory item")
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid inventory item ID")
		return
	}
	var req UpdateItemRequest
	if err := httpx.Bind(r, h.validate, &req); err != nil {
		httpx.RespondBindError(w, err)
		return
	}
	item, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "Inventory item not found")
		case errors.Is(err, shared.ErrConflict):
			httpx.Error(w, http.StatusConflict, "SKU already exists")
		default:
			h.logger.Error("update inventory item failed", slog.Any("error", err))
			httpx.Error(w, http.StatusInternalServerError, "Failed to update inventory item")
		}
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid inventory item ID")
		return
	}
	if !h.service.Delete(r.Context(), id) {
		httpx.Error(w, http.StatusNotFound, "Inventory item not found")
		return
	}
	httpx.NoContent(w)
}
