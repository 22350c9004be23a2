package workflow

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

// Handler wires the workflow graph HTTP endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: httpx.NewValidator()}
}

// MountRoutes registers node and edge routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/nodes", func(r chi.Router) {
		r.Get("/", h.ListNodes)
		r.Post("/", h.CreateNode)
		r.Get("/{id}", h.ShowNode)
		r.Put("/{id}", h.UpdateNode)
		r.Delete("/{id}", h.DeleteNode)
	})
	r.Route("/edges", func(r chi.Router) {
		r.Get("/", h.ListEdges)
		r.Post("/", h.CreateEdge)
		r.Get("/{id}", h.ShowEdge)
		r.Put("/{id}", h.UpdateEdge)
		r.Delete("/{id}", h.DeleteEdge)
	})
}

func (h *Handler) ListNodes(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.ListNodes(r.Context()))
}

func (h *Handler) ShowNode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid node ID")
		return
	}
	node, err := h.service.GetNode(r.Context(), id)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "Node not found")
		return
	}
	httpx.JSON(w, http.StatusOK, node)
}

func (h *Handler) CreateNode(w http.ResponseWriter, r *http.Request) {
	var req CreateNodeRequest
	if err := httpx.Bind(r, h.validate, &req); err != nil {
		httpx.RespondBindError(w, err)
		return
	}
	node, err := h.service.CreateNode(r.Context(), req)
	if err != nil {
		if errors.Is(err, shared.ErrConflict) {
			httpx.Error(w, http.StatusConflict, "Node ID already exists")
			return
		}
		h.logger.Error("create node failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Failed to create node")
		return
	}
	httpx.JSON(w, http.StatusCreated, node)
}

func (h *Handler) UpdateNode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid node ID")
		return
	}
	var req UpdateNodeRequest
	if err := httpx.Bind(r, h.validate, &req); err != nil {
		httpx.RespondBindError(w, err)
		return
	}
	node, err := h.service.UpdateNode(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "Node not found")
		case errors.Is(err, shared.ErrConflict):
			httpx.Error(w, http.StatusConflict, "Node ID already exists")
		default:
			h.logger.Error("update node failed", slog.Any("error", err))
			httpx.Error(w, http.StatusInternalServerError, "Failed to update node")
		}
		return
	}
	httpx.JSON(w, http.StatusOK, node)
}

func (h *Handler) DeleteNode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid node ID")
		return
	}
	if !h.service.DeleteNode(r.Context(), id) {
		httpx.Error(w, http.StatusNotFound, "Node not found")
		return
	}
	httpx.NoContent(w)
}

func (h *Handler) ListEdges(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.ListEdges(r.Context()))
}

func (h *Handler) ShowEdge(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid edge ID")
		return
	}
	edge, err := h.service.GetEdge(r.Context(), id)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "Edge not found")
		return
	}
	httpx.JSON(w, http.StatusOK, edge)
}

func (h *Handler) CreateEdge(w http.ResponseWriter, r *http.Request) {
	var req CreateEdgeRequest
	if err := httpx.Bind(r, h.validate, &req); err != nil {
		httpx.RespondBindError(w, err)
		return
	}
	edge, err := h.service.CreateEdge(r.Context(), req)
	if err != nil {
		if errors.Is(err, shared.ErrConflict) {
			httpx.Error(w, http.StatusConflict, "Edge ID already exists")
			return
		}
		h.logger.Error("create edge failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Failed to create edge")
		return
	}
	httpx.JSON(w, http.StatusCreated, edge)
}

func (h *Handler) UpdateEdge(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid edge ID")
		return
	}
	var req UpdateEdgeRequest
	if err := httpx.Bind(r, h.validate, &req); err != nil {
		httpx.RespondBindError(w, err)
		return
	}
	edge, err := h.service.UpdateEdge(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "Edge not found")
		case errors.Is(err, shared.ErrConflict):
			httpx.Error(w, http.StatusConflict, "Edge ID already exists")
		default:
			h.logger.Error("update edge failed", slog.Any("error", err))
			httpx.Error(w, http.StatusInternalServerError, "Failed to update edge")
		}
		return
	}
	httpx.JSON(w, http.StatusOK, edge)
}

func (h *Handler) DeleteEdge(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid edge ID")
		return
	}
	if !h.service.DeleteEdge(r.Context(), id) {
		httpx.Error(w, http.StatusNotFound, "Edge not found")
		return
	}
	httpx.NoContent(w)
}
