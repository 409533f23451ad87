package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docsearch/docs"
	"docsearch/internal/config"
	"docsearch/internal/database"
	"docsearch/internal/database/migration"
	handlers "docsearch/internal/http/handler"
	"docsearch/internal/http/middleware"
	"docsearch/internal/logging"
	"docsearch/internal/otel"
	"docsearch/internal/preview"
	"docsearch/internal/render"
	"docsearch/internal/repository"
	"docsearch/internal/repository/memory"
	"docsearch/internal/repository/postgres"
	"docsearch/internal/service"
	"docsearch/internal/storage"
)

// @title Document Search API
// @version 1.0
// @description Catalog search and document preview sessions.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()
	logger := logging.Stdout(loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		fatal(logger, "failed to initialize tracing", err)
	}

	db, docRepo := openCatalog(ctx, cfg, logger)
	if db != nil {
		defer db.Close()
	}

	// Object storage is optional; without it locators are opened as-is.
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			fatal(logger, "failed to initialize object storage", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	previewMetrics, err := preview.NewMetrics(reg)
	if err != nil {
		fatal(logger, "failed to register preview metrics", err)
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		fatal(logger, "failed to register http metrics", err)
	}

	renderer := render.NewPDF(objStore, cfg.Preview.RenderMaxBytes(), time.Duration(cfg.Preview.RenderHTTPTimeout)*time.Second)
	previews := preview.NewManager(renderer,
		preview.WithLoadTimeout(time.Duration(cfg.Preview.LoadTimeoutSec)*time.Second),
		preview.WithLogger(logger),
		preview.WithMetrics(previewMetrics),
	)

	docSvc := service.NewDocumentService(docRepo, objStore, time.Duration(cfg.MinIO.PresignExpirySec)*time.Second)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.LoggerWith(logger))
	app.Use(httpMetrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, docSvc, previews, loc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		logger.Log(map[string]any{
			"component":      "server",
			"event":          "server_start",
			"addr":           addr,
			"catalog_source": cfg.CatalogSource,
			"storage":        cfg.MinIO.Enabled(),
		})
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			fatal(logger, "failed to start server", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("server", "server shutdown failed", err)
	}
	if err := previews.Shutdown(shutdownCtx); err != nil {
		logger.Error("preview", "preview shutdown failed", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("otel", "tracer shutdown failed", err)
	}
	logger.Log(map[string]any{"component": "server", "event": "server_stop"})
}

// openCatalog selects the catalog provider. The returned *sql.DB is nil for the
// in-memory catalog.
func openCatalog(ctx context.Context, cfg *config.AppConfig, logger *logging.Logger) (*sql.DB, repository.DocumentRepository) {
	if cfg.CatalogSource != config.CatalogPostgres {
		repo, err := memory.NewDocumentMemory(memory.Fixtures())
		if err != nil {
			fatal(logger, "failed to load in-memory catalog", err)
		}
		return nil, repo
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		fatal(logger, "failed to connect to database", err)
	}
	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
			_ = db.Close()
			fatal(logger, "failed to migrate database", err)
		}
	}
	return db, postgres.NewDocumentPostgres(db)
}

func fatal(logger *logging.Logger, msg string, err error) {
	logger.Error("server", msg, err)
	os.Exit(1)
}
