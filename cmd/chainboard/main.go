package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chainboard/chainboard/internal/app"
	"github.com/chainboard/chainboard/internal/inventory"
	"github.com/chainboard/chainboard/internal/observability"
	"github.com/chainboard/chainboard/internal/orders"
	"github.com/chainboard/chainboard/internal/seed"
	"github.com/chainboard/chainboard/internal/stats"
	"github.com/chainboard/chainboard/internal/suppliers"
	"github.com/chainboard/chainboard/internal/users"
	"github.com/chainboard/chainboard/internal/workflow"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	supplierRepo := suppliers.NewRepository()
	orderRepo := orders.NewRepository()
	inventoryRepo := inventory.NewRepository()
	workflowRepo := workflow.NewRepository()
	statsRepo := stats.NewRepository()
	userRepo := users.NewRepository()
	userService := users.NewService(userRepo)

	if err := seed.Load(ctx, seed.Stores{
		Suppliers: supplierRepo,
		Orders:    orderRepo,
		Inventory: inventoryRepo,
		Workflow:  workflowRepo,
		Stats:     statsRepo,
		Users:     userService,
	}); err != nil {
		logger.Error("seed stores", slog.Any("error", err))
		os.Exit(1)
	}

	supplierService := suppliers.NewService(supplierRepo)
	orderService := orders.NewService(orderRepo)
	inventoryService := inventory.NewService(inventoryRepo)
	workflowService := workflow.NewService(workflowRepo)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		StatsHandler:     stats.NewHandler(logger, statsRepo),
		SuppliersHandler: suppliers.NewHandler(logger, supplierService, orderService),
		OrdersHandler:    orders.NewHandler(logger, orderService),
		InventoryHandler: inventory.NewHandler(logger, inventoryService),
		WorkflowHandler:  workflow.NewHandler(logger, workflowService),
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
