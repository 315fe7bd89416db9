package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nurshop/storefront/internal/api/handlers"
	"github.com/nurshop/storefront/internal/api/middleware"
	"github.com/nurshop/storefront/internal/config"
	"github.com/nurshop/storefront/internal/health"
	"github.com/nurshop/storefront/internal/metrics"
	"github.com/nurshop/storefront/internal/models"
	repository "github.com/nurshop/storefront/internal/repositories"
	service "github.com/nurshop/storefront/internal/services"
	"github.com/nurshop/storefront/internal/storage"
	"github.com/nurshop/storefront/internal/storage/file"
	"github.com/nurshop/storefront/internal/storage/redisstore"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Storage setup
	store, err := newStore(cfg)
	if err != nil {
		slog.Error("Error opening the backing store", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Error closing the backing store", slog.String("error", err.Error()))
		}
	}()

	ctx := context.Background()

	catalog, err := loadCatalog(cfg)
	if err != nil {
		slog.Error("Error loading catalog seed", "error", err.Error())
		os.Exit(1)
	}

	cartService := service.NewCartService(ctx, repository.NewCartRepo(store))
	orderService, err := service.NewOrderService(ctx, repository.NewOrderRepo(store))
	if err != nil {
		slog.Error("Error initializing order store", "error", err.Error())
		os.Exit(1)
	}
	catalogService := service.NewCatalogService(catalog)
	settingsService := service.NewSettingsService(repository.NewSettingsRepo(store))
	contactService := service.NewContactService(repository.NewContactRepo(store))

	cartHandler := handlers.NewCartHandler(cartService, catalogService)
	orderHandler := handlers.NewOrderHandler(orderService, cartService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	contactHandler := handlers.NewContactHandler(contactService)

	healthHandler, err := health.NewHealthHandler(cfg, store)
	if err != nil {
		slog.Error("Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("driver", cfg.Storage.Driver))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PATCH /api/v1/cart/items/{id}", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/v1/checkout", orderHandler.Checkout())
	routerMux.HandleFunc("GET /api/v1/orders", orderHandler.ListOrders())
	routerMux.HandleFunc("DELETE /api/v1/orders/{id}", orderHandler.CancelOrder())
	routerMux.HandleFunc("PATCH /api/v1/orders/{id}/status", orderHandler.UpdateOrderStatus())
	routerMux.HandleFunc("GET /api/v1/settings", settingsHandler.GetSettings())
	routerMux.HandleFunc("PUT /api/v1/settings/language", settingsHandler.UpdateLanguage())
	routerMux.HandleFunc("PUT /api/v1/settings/notifications", settingsHandler.UpdateNotifications())
	routerMux.HandleFunc("PUT /api/v1/settings/privacy", settingsHandler.UpdatePrivacy())
	routerMux.HandleFunc("PUT /api/v1/settings/account", settingsHandler.UpdateAccount())
	routerMux.HandleFunc("DELETE /api/v1/settings/account", settingsHandler.DeleteAccount())
	routerMux.HandleFunc("POST /api/v1/logout", settingsHandler.Logout())
	routerMux.HandleFunc("POST /api/v1/contact", contactHandler.SubmitMessage())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

}

// loadCatalog returns the seed file's products, or nil for the built-in
// sample catalog.
func loadCatalog(cfg *config.Config) ([]models.Product, error) {

	if cfg.Catalog.SeedPath == "" {
		return nil, nil
	}

	return service.LoadCatalog(cfg.Catalog.SeedPath)
}

func newStore(cfg *config.Config) (storage.Store, error) {

	if cfg.Storage.Driver == "redis" {
		client, err := redisstore.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}

		return redisstore.NewRedisStore(client), nil
	}

	return file.NewFileStore(cfg.Storage.Path)
}
