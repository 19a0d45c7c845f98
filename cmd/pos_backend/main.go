package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/printshop_pos/internal/adapters/filestore"
	"github.com/SscSPs/printshop_pos/internal/adapters/gemini"
	"github.com/SscSPs/printshop_pos/internal/adapters/invoice"
	"github.com/SscSPs/printshop_pos/internal/adapters/vietqr"
	"github.com/SscSPs/printshop_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
	"github.com/SscSPs/printshop_pos/internal/core/services"
	"github.com/SscSPs/printshop_pos/internal/handlers"
	"github.com/SscSPs/printshop_pos/internal/metrics"
	"github.com/SscSPs/printshop_pos/internal/middleware"
	"github.com/SscSPs/printshop_pos/internal/platform/config"
	"github.com/SscSPs/printshop_pos/internal/repositories/collection"
	"github.com/SscSPs/printshop_pos/internal/repositories/database/memory"
	"github.com/SscSPs/printshop_pos/internal/repositories/database/pgsql"
	"github.com/SscSPs/printshop_pos/internal/repositories/database/sqlite"
	"github.com/SscSPs/printshop_pos/pkg/database"
	"github.com/SscSPs/printshop_pos/pkg/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Print Shop POS API
// @version 1.0
// @description Orders, invoices, expenses and revenue reports for a print and copy shop.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.Setup(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeStore, err := openKeyValueStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open storage", slog.String("driver", cfg.StorageDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	repos, err := collection.NewRepositoryProvider(ctx, kv, logger)
	if err != nil {
		logger.Error("Failed to load persisted collections", slog.String("error", err.Error()))
		os.Exit(1)
	}

	gw, err := buildGateways(ctx, cfg, repos, logger)
	if err != nil {
		logger.Error("Failed to initialize gateways", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m := metrics.New()
	serviceContainer, err := services.NewServiceContainer(cfg, repos, gw, m)
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer serviceContainer.Export.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.Metrics(m))

	if limiterInstance, err := middleware.NewLimiter(cfg.RateLimit); err != nil {
		logger.Warn("Invalid RATE_LIMIT, request rate limiting disabled", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
	} else {
		r.Use(middleware.RateLimit(limiterInstance))
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, m)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// openKeyValueStore opens the blob store selected by STORAGE_DRIVER.
// The returned func releases it.
func openKeyValueStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.KeyValueRepositoryFacade, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Warn("Using in-memory storage; data is lost on restart")
		return memory.NewKeyValueRepository(), func() {}, nil

	case config.StoragePostgres:
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return nil, nil, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		return pgsql.NewKeyValueRepository(pool), func() { database.ClosePgxPool(pool, logger) }, nil

	default:
		store, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		logger.Info("Using SQLite storage", slog.String("path", cfg.SQLitePath))
		return store, closeQuietly(store, logger), nil
	}
}

func closeQuietly(c io.Closer, logger *slog.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Error("Error closing storage", slog.String("error", err.Error()))
		}
	}
}

// buildGateways wires the outbound adapters. Optional ones stay nil when unconfigured.
func buildGateways(ctx context.Context, cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger) (services.Gateways, error) {
	gw := services.Gateways{
		Renderer: invoice.NewRenderer(invoice.WithLocation(time.Local)),
	}

	files, err := filestore.New(ctx, filestore.Settings{
		Driver:   cfg.ExportStorage,
		LocalDir: cfg.ExportDir,
		S3: filestore.S3Config{
			Region:        cfg.S3Region,
			Bucket:        cfg.S3Bucket,
			Prefix:        cfg.S3Prefix,
			PublicBaseURL: cfg.S3PublicBaseURL,
		},
	})
	if err != nil {
		return gw, err
	}
	gw.Files = files
	logger.Info("Invoice export storage ready", slog.Any("store", files))

	if cfg.PaymentQREnabled() {
		qr := vietqr.New(domain.BankAccount{
			BankID:      cfg.BankID,
			AccountNo:   cfg.BankAccountNo,
			AccountName: cfg.BankAccountName,
			Template:    cfg.QRTemplate,
		})
		gw.QR = qr
		gw.QRImages = qr
	}

	if cfg.GeminiAPIKey != "" {
		parser, err := gemini.NewParser(ctx, cfg.GeminiAPIKey,
			gemini.WithModel(cfg.GeminiModel),
			gemini.WithPresets(repos.PresetRepo),
			gemini.WithRateLimit(cfg.GeminiRatePerSecond, cfg.GeminiBurst),
		)
		if err != nil {
			logger.Warn("Order assistant disabled", slog.String("error", err.Error()))
		} else {
			gw.Parser = parser
		}
	}

	return gw, nil
}
