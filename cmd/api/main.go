package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"adminapi/docs"
	"adminapi/internal/config"
	"adminapi/internal/database"
	"adminapi/internal/database/migration"
	handlers "adminapi/internal/http/handler"
	"adminapi/internal/http/middleware"
	"adminapi/internal/logger"
	tracing "adminapi/internal/otel"
	"adminapi/internal/repository/postgres"
	"adminapi/internal/service"
)

// @title Admin API
// @version 1.0
// @description Department and role management
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Name, zl)
	if err != nil {
		zl.Fatal("failed to initialize tracing", zap.Error(err))
	}

	db, err := database.NewPostgres(ctx, cfg.Database, zl)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.RunMigrations {
		if err := migration.EnsureMigrated(ctx, db, zl); err != nil {
			zl.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	// Initialize repositories and services
	svcs := handlers.Services{
		Departments: service.NewNamedService(service.Departments, postgres.NewNamedPostgres(db, postgres.DepartmentsTable)),
		Roles:       service.NewNamedService(service.Roles, postgres.NewNamedPostgres(db, postgres.RolesTable)),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		zl.Fatal("failed to register metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ErrorHandler: handlers.ErrorHandler(zl),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(prom.Handler())
	// JSON logger middleware for structured request logs
	app.Use(middleware.Logger(zl))
	app.Use(middleware.Timeout(cfg.RequestTimeout()))
	app.Use(recover.New())

	app.Get("/metrics", prom.Expose())

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

	handlers.RegisterRoutes(app, db, svcs)

	go func() {
		<-ctx.Done()
		zl.Info("shutting down")
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			zl.Error("server shutdown failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	zl.Info("server starting", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		zl.Error("failed to start server", zap.Error(err))
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		zl.Warn("tracer shutdown failed", zap.Error(err))
	}
}
