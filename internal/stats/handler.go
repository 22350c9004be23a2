package stats

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/chainboard/chainboard/internal/platform/httpx"
)

// Handler wires the statistics endpoints. The collection is a singleton, so
// the handler talks to the repository directly.
type Handler struct {
	logger   *slog.Logger
	repo     *Repository
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, repo *Repository) *Handler {
	return &Handler{logger: logger, repo: repo, validate: httpx.NewValidator()}
}

// MountRoutes registers statistics routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/statistics", h.Show)
	r.Put("/statistics", h.Update)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.Get()
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "Statistics not found")
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatisticsRequest
	if err := httpx.Bind(r, h.validate, &req); err != nil {
		httpx.RespondBindError(w, err)
		return
	}
	stats, err := h.repo.Update(req)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "Statistics not found")
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}
