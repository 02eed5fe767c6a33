package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tutorapi/docs"
	"tutorapi/internal/auth"
	"tutorapi/internal/config"
	"tutorapi/internal/database"
	"tutorapi/internal/database/migration"
	"tutorapi/internal/extract"
	"tutorapi/internal/generator"
	handlers "tutorapi/internal/http/handler"
	"tutorapi/internal/http/middleware"
	"tutorapi/internal/llm"
	"tutorapi/internal/otel"
	"tutorapi/internal/repository/sqlstore"
	"tutorapi/internal/service"
	"tutorapi/internal/storage"
)

// @title Document Tutor API
// @version 2.0.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	dbHost := cfg.Database.Host
	if cfg.Database.Driver == database.DriverSQLite {
		dbHost = cfg.Database.SQLitePath
	}
	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Driver, loc, dbHost); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	objStore, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("failed to initialize file storage: %v", err)
	}

	completer, err := llm.New(cfg.LLM)
	if err != nil {
		log.Fatalf("failed to initialize language model client: %v", err)
	}
	gen := generator.New(completer, cfg.LLM.MaxSampleChars, logger)

	users := auth.NewStaticUserStore()
	if cfg.Auth.UsersFile != "" {
		if users, err = auth.LoadUsersFile(cfg.Auth.UsersFile); err != nil {
			log.Fatalf("failed to load users: %v", err)
		}
	}
	tokens, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMin)*time.Minute)
	if err != nil {
		log.Fatalf("failed to initialize token issuer: %v", err)
	}

	metrics, err := service.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}

	// Repositories
	docRepo := sqlstore.NewDocumentStore(db)
	conceptRepo := sqlstore.NewConceptStore(db)
	cardRepo := sqlstore.NewFlashcardStore(db)
	folderRepo := sqlstore.NewFolderStore(db, cfg.Database.Driver)
	txm := sqlstore.NewTransactionManager(db, logger)
	extractor := extract.NewRegistry()

	deps := handlers.Deps{
		DB:        db,
		Documents: service.NewDocumentService(objStore, docRepo, txm, extractor),
		Processing: service.NewProcessingService(service.ProcessingDeps{
			Documents:  docRepo,
			Concepts:   conceptRepo,
			Flashcards: cardRepo,
			Tx:         txm,
			Storage:    objStore,
			Extractor:  extractor,
			Generator:  gen,
			Logger:     logger,
			Metrics:    metrics,
		}),
		Reviews: service.NewReviewService(docRepo, cardRepo, metrics),
		Study:   service.NewStudyService(docRepo, conceptRepo, cardRepo, gen, loc, logger),
		Folders: service.NewFolderService(folderRepo, docRepo, txm),
		Auth:    service.NewAuthService(users, tokens),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.UploadMaxBytes,
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register http metrics: %v", err)
	}

	// Register global middleware
	app.Use(otelfiber.Middleware())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.LoggerWithWriter(os.Stdout, loc))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

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

	handlers.RegisterRoutes(app, deps)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("tracing shutdown failed", "error", err)
		}
	}()

	logger.Info("server starting", "port", cfg.Port, "db_driver", cfg.Database.Driver, "storage_driver", cfg.Storage.Driver, "llm_provider", cfg.LLM.Provider)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
