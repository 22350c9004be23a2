package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/chainboard/chainboard/internal/inventory"
	"github.com/chainboard/chainboard/internal/observability"
	"github.com/chainboard/chainboard/internal/orders"
	"github.com/chainboard/chainboard/internal/stats"
	"github.com/chainboard/chainboard/internal/suppliers"
	"github.com/chainboard/chainboard/internal/workflow"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	StatsHandler     *stats.Handler
	SuppliersHandler *suppliers.Handler
	OrdersHandler    *orders.Handler
	InventoryHandler *inventory.Handler
	WorkflowHandler  *workflow.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router with Chainboard defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		params.StatsHandler.MountRoutes(r)
		r.Route("/suppliers", params.SuppliersHandler.MountRoutes)
		r.Route("/orders", params.OrdersHandler.MountRoutes)
		r.Route("/inventory", params.InventoryHandler.MountRoutes)
		r.Route("/workflow", params.WorkflowHandler.MountRoutes)
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
