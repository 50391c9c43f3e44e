package main

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"catalogapi/docs"
	"catalogapi/internal/config"
	"catalogapi/internal/database"
	"catalogapi/internal/database/migration"
	handlers "catalogapi/internal/http/handler"
	"catalogapi/internal/http/middleware"
	"catalogapi/internal/otel"
	"catalogapi/internal/repository"
	"catalogapi/internal/repository/memory"
	"catalogapi/internal/repository/postgres"
	"catalogapi/internal/service"
	"catalogapi/internal/storage"
)

// @title Catalog API
// @version 1.0
// @BasePath /
func main() {
	ctx := context.Background()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	// Initialize tracing; degrades to noop when the exporter is unavailable.
	shutdownTracing, err := otel.Init(ctx, cfg.Location())
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	// Pick the item repository: PostgreSQL when configured, otherwise the
	// seeded in-memory catalog so the demo routes work out of the box.
	var (
		db       *sql.DB
		itemRepo repository.ItemRepository
	)
	if cfg.Database.Configured() {
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, cfg.Location(), cfg.Database.Host); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		itemRepo = postgres.NewItemPostgres(db)
	} else {
		itemRepo = memory.NewSeeded()
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	catalogSvc := service.NewCatalogService(itemRepo)
	fileSvc := service.NewFileService(objStore)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	// OpenTelemetry spans per request
	app.Use(otelfiber.Middleware())

	// Prometheus metrics: per-route counters and latency histograms
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, catalogSvc, fileSvc)

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

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
