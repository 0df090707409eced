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

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/healthplus-lab/lab-chatbot-backend/internal/api/router"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/booking"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/catalog"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/chat"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/clinic"
	appconfig "github.com/healthplus-lab/lab-chatbot-backend/internal/config"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/ledger"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/observability/metrics"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/offers"
	appmigrations "github.com/healthplus-lab/lab-chatbot-backend/migrations"
	"github.com/healthplus-lab/lab-chatbot-backend/pkg/logging"
)

func main() {
	// .env is optional; real deployments configure the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel, cfg.Env)
	logger.Info("starting lab-chatbot-backend API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Ledger store: Postgres when configured, otherwise an in-memory ledger
	// for local development.
	var store ledger.Store
	if cfg.DatabaseURL != "" {
		if err := applyMigrations(cfg.DatabaseURL); err != nil {
			logger.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create pgx pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		store = ledger.NewPostgresStore(pool)
		logger.Info("ledger store ready", "backend", "postgres")
	} else {
		store = ledger.NewMemoryStore()
		logger.Warn("DATABASE_URL not set; using in-memory ledger, bookings will not survive restarts")
	}

	cat := catalog.Default()
	info := clinic.DefaultInfo()
	apiMetrics := metrics.NewAPIMetrics(nil)

	// Chat responder: Gemini when a key is configured, keyword rules otherwise.
	var responder chat.Responder
	source := chat.SourceRules
	if cfg.GeminiAPIKey != "" {
		gemini, err := chat.NewGeminiResponder(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cat, info)
		if err != nil {
			logger.Error("failed to create gemini responder", "error", err)
			os.Exit(1)
		}
		defer gemini.Close()
		responder = gemini
		source = chat.SourceGemini
		logger.Info("chat responder ready", "source", source, "model", cfg.GeminiModel)
	} else {
		responder = chat.NewRuleResponder(cat, info)
		logger.Warn("GEMINI_API_KEY not set; chat degraded to rule-based replies")
	}

	bookingSvc := booking.NewService(cat, store, apiMetrics, cfg.StorageTimeout, logger)
	chatSvc := chat.NewService(responder, source, cfg.ChatTimeout, apiMetrics, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		CatalogHandler:     catalog.NewHandler(cat),
		ClinicHandler:      clinic.NewHandler(info),
		ChatHandler:        chat.NewHandler(chatSvc, logger),
		BookingHandler:     booking.NewHandler(bookingSvc, logger),
		OffersHandler:      offers.NewHandler(store, cfg.StorageTimeout, logger),
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// applyMigrations brings the schema up to date. Running it at startup keeps
// the bookings and customers tables idempotently created.
func applyMigrations(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	dbDriver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return err
	}
	srcDriver, err := iofs.New(appmigrations.FS, ".")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		return srcErr
	}
	return dbErr
}
