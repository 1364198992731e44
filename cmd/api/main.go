package main

import (
	"context"
	"errors"
	stdlog "log"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"sitedocs/docs"
	"sitedocs/internal/cache"
	"sitedocs/internal/config"
	"sitedocs/internal/database"
	"sitedocs/internal/database/migration"
	handlers "sitedocs/internal/http/handler"
	"sitedocs/internal/http/middleware"
	"sitedocs/internal/logger"
	tracing "sitedocs/internal/otel"
	"sitedocs/internal/repository/postgres"
	"sitedocs/internal/service"
	"sitedocs/internal/storage"
)

// @title        Site Document API
// @version      1.0
// @description  Query, group, summarize and export construction project documents.
// @BasePath     /
func main() {
	cfg := config.Load()
	loc := cfg.Location()

	log, err := logger.New(cfg.Env, loc)
	if err != nil {
		stdlog.Fatalf("failed to build logger: %v", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.TracingEnabled, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	docRepo := postgres.NewDocumentPostgres(db)
	docSvc := service.NewDocumentService(docRepo, newObjectStore(cfg.MinIO, log), newDocumentCache(cfg.Redis, log), log, service.Options{
		Location:  loc,
		URLExpiry: cfg.Export.URLExpiry,
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(fiberrecover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Tracing(cfg.TracingEnabled))
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, db, docSvc, loc)
	app.Get("/metrics", handlers.Metrics(prometheus.DefaultGatherer))

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

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("server shutdown", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := app.Listen(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Warn("tracing shutdown", zap.Error(err))
	}
}

// newDocumentCache connects to Redis when REDIS_ADDR is set. An unreachable Redis
// disables caching instead of failing startup.
func newDocumentCache(cfg config.RedisConfig, log *zap.Logger) cache.DocumentCache {
	if cfg.Addr == "" {
		log.Info("document cache disabled")
		return cache.NewNop()
	}
	kv, err := cache.NewRedis(cfg)
	if err != nil {
		log.Warn("document cache unavailable", zap.String("addr", cfg.Addr), zap.Error(err))
		return cache.NewNop()
	}
	return cache.NewSnapshotCache(kv, cfg.TTL)
}

// newObjectStore returns nil when MinIO is not configured; publishing exports then fails
// while downloads keep working.
func newObjectStore(cfg config.MinIOConfig, log *zap.Logger) storage.Storage {
	if cfg.Endpoint == "" {
		log.Info("object storage disabled")
		return nil
	}
	store, err := storage.NewMinIO(cfg)
	if err != nil {
		log.Fatal("failed to initialize object storage", zap.Error(err))
	}
	return store
}
