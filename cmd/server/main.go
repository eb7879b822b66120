package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bangazon-be/internal/category"
	"bangazon-be/internal/config"
	"bangazon-be/internal/customer"
	"bangazon-be/internal/db"
	"bangazon-be/internal/favorite"
	"bangazon-be/internal/handler"
	"bangazon-be/internal/logger"
	"bangazon-be/internal/middleware"
	"bangazon-be/internal/order"
	"bangazon-be/internal/payment"
	"bangazon-be/internal/product"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	initDBFunc      = db.InitDB
	migrateFunc     = db.RunMigrations
	startServerFunc = startServer
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited with error", zap.Error(err))
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.Options{Production: cfg.IsProduction(), Level: cfg.LogLevel}); err != nil {
		return err
	}
	defer logger.Sync()

	decimal.MarshalJSONWithoutQuotes = true

	database := initDBFunc(cfg)
	defer database.Close()

	if err := migrateFunc(database, cfg.MigrationsPath); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           newServer(ctx, cfg, database),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.L().Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
	return startServerFunc(ctx, srv)
}

// newServer wires repositories, services and routes into one traced handler.
func newServer(ctx context.Context, cfg *config.Config, database *sql.DB) http.Handler {
	customerRepo := customer.NewRepository(database)
	paymentRepo := payment.NewRepository(database)
	productRepo := product.NewRepository(database)

	h := handler.New(handler.Services{
		Products:   product.NewService(productRepo),
		Categories: category.NewService(category.NewRepository(database)),
		Orders:     order.NewService(order.NewRepository(database), productRepo, paymentRepo),
		Payments:   payment.NewService(paymentRepo),
		Customers:  customer.NewService(customerRepo, paymentRepo),
		Favorites:  favorite.NewService(favorite.NewRepository(database), customerRepo),
	})

	return otelhttp.NewHandler(setupRouter(ctx, cfg, h), "bangazon-api")
}

func setupRouter(ctx context.Context, cfg *config.Config, h *handler.Handler) chi.Router {
	limiter := middleware.NewLimiter(ctx)

	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(chimw.RealIP)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.Recover)
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Auth(cfg.JWTSecret))
	r.Use(limiter.Middleware)

	h.Routes(r)
	return r
}

// startServer serves until ctx is cancelled, then drains in-flight requests.
func startServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
