package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/insighteats/docs"
	"github.com/sbilibin2017/insighteats/internal/config"
	"github.com/sbilibin2017/insighteats/internal/facades"
	"github.com/sbilibin2017/insighteats/internal/handlers"
	"github.com/sbilibin2017/insighteats/internal/jwt"
	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/middlewares"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/sbilibin2017/insighteats/internal/repositories"
	"github.com/sbilibin2017/insighteats/internal/services"
	"github.com/sbilibin2017/insighteats/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title InsightEats API
// @version 1.0.0
// @description Nutrition diary: biometric goals, food catalog, daily logs, weight tracking and AI meal photo analysis
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// app bundles the services served over HTTP.
type app struct {
	tokener  *jwt.JWT
	db       *sqlx.DB
	users    *services.UserService
	goals    *services.GoalsService
	weight   *services.WeightService
	foods    *services.FoodService
	diary    *services.DiaryService
	analysis *services.AnalysisService
	demo     *services.DemoService
	export   *services.ExportService
}

// run initializes the logger, database, Redis, Kafka, object storage and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	loc, err := cfg.App.Location()
	if err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := repositories.Migrate(db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warnw("Redis unavailable, external searches will not be cached", "error", err)
	}
	defer rdb.Close()

	// Kafka publishing is optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Meal photo storage is optional
	var photos services.PhotoStore
	if cfg.Storage.Endpoint != "" {
		client, err := storage.NewMinioClient(cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.UseSSL)
		if err != nil {
			return fmt.Errorf("failed to create object storage client: %w", err)
		}
		store, err := storage.NewPhotoStore(ctx, client, cfg.Storage.Bucket)
		if err != nil {
			return fmt.Errorf("failed to prepare photo bucket: %w", err)
		}
		photos = store
	}

	analyzer, closeAnalyzer, err := newVisionAnalyzer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create vision client: %w", err)
	}
	defer closeAnalyzer()

	tokener := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithIssuer(cfg.JWT.Issuer),
		jwt.WithExpiration(cfg.JWT.Exp),
	)

	a := newApp(cfg, db, rdb, kafkaWriter, photos, analyzer, tokener, services.NewCalendar(loc, time.Now))
	r := newRouter(a)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.App.Addr())),
	))
	docs.SwaggerInfo.Host = cfg.App.Addr()

	srv := &http.Server{
		Addr:    cfg.App.Addr(),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.App.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newApp wires repositories, facades and services.
func newApp(
	cfg *config.Config,
	db *sqlx.DB,
	rdb *redis.Client,
	kafkaWriter services.KafkaWriter,
	photos services.PhotoStore,
	analyzer services.VisionAnalyzer,
	tokener *jwt.JWT,
	cal services.Calendar,
) *app {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, middlewares.GetTxFromContext)
	goalsRepo := repositories.NewGoalsRepository(db, middlewares.GetTxFromContext)
	weightRepo := repositories.NewWeightLogRepository(db, middlewares.GetTxFromContext)
	foodRepo := repositories.NewFoodRepository(db, middlewares.GetTxFromContext)
	logRepo := repositories.NewLogRepository(db, middlewares.GetTxFromContext)

	var cache services.FoodSearchCache
	if rdb != nil {
		cache = repositories.NewFoodSearchCacheRepository(rdb, cfg.Redis.SearchTTL)
	}

	// Initialize facades
	httpClient := &http.Client{Timeout: 30 * time.Second}
	usda := facades.NewUSDAFacade(httpClient, cfg.USDA.BaseURL, cfg.USDA.APIKey, cfg.USDA.Timeout)
	off := facades.NewOpenFoodFactsFacade(httpClient, cfg.OpenFood.BaseURL, cfg.OpenFood.Timeout)
	unsplash := facades.NewUnsplashFacade(httpClient, cfg.Unsplash.BaseURL, cfg.Unsplash.AccessKey)

	// Initialize services
	events := services.NewKafkaEventPublisher(kafkaWriter)
	foods := services.NewFoodService(foodRepo, usda, off, cache, unsplash)

	return &app{
		tokener:  tokener,
		db:       db,
		users:    services.NewUserService(userRepo, userRepo, models.DefaultUserDefaults()),
		goals:    services.NewGoalsService(userRepo, userRepo, goalsRepo, weightRepo, events, cal),
		weight:   services.NewWeightService(userRepo, userRepo, goalsRepo, weightRepo, events, cal),
		foods:    foods,
		diary:    services.NewDiaryService(userRepo, foodRepo, logRepo, events, cal),
		analysis: services.NewAnalysisService(userRepo, analyzer, photos, foods),
		demo: services.NewDemoService(userRepo, userRepo, foodRepo, logRepo, weightRepo, goalsRepo, cal,
			rand.New(rand.NewSource(time.Now().UnixNano()))),
		export: services.NewExportService(userRepo, foodRepo, logRepo, weightRepo),
	}
}

// newVisionAnalyzer picks the meal photo provider named by AI_PROVIDER; nil when it has no credentials.
// The returned func releases the provider client.
func newVisionAnalyzer(ctx context.Context, cfg *config.Config) (services.VisionAnalyzer, func(), error) {
	switch cfg.AIProvider {
	case "google":
		if cfg.Google.APIKey == "" {
			break
		}
		client, err := facades.NewGoogleVisionClient(ctx, cfg.Google.APIKey, cfg.Google.Endpoint)
		if err != nil {
			return nil, nil, err
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				logger.Log.Warnw("failed to close Google Vision client", "error", err)
			}
		}
		return facades.NewGoogleVisionFacade(client, rand.New(rand.NewSource(time.Now().UnixNano()))), closeClient, nil
	default:
		if cfg.OpenAI.APIKey == "" {
			break
		}
		return facades.NewOpenAIVisionFacade(facades.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL), cfg.OpenAI.Model), func() {}, nil
	}
	logger.Log.Warnw("no vision provider configured, photo analysis disabled", "provider", cfg.AIProvider)
	return nil, func() {}, nil
}

// newRouter mounts the API under /api/v1. Mutating routes that touch more
// than one table run inside a request transaction.
func newRouter(a *app) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/healthz", handlers.NewHealthHandler())

	tx := middlewares.TxMiddleware(a.db)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(a.tokener))

		r.Post("/users/me", handlers.NewEnsureUserHandler(a.users, a.tokener))
		r.Get("/users/me", handlers.NewCurrentUserHandler(a.users, a.tokener))

		r.Get("/goals", handlers.NewGetGoalsHandler(a.goals, a.tokener))
		r.With(tx).Post("/goals", handlers.NewSaveProfileHandler(a.goals, a.tokener))

		r.With(tx).Post("/weight", handlers.NewLogWeightHandler(a.weight, a.tokener))
		r.Get("/weight/history", handlers.NewWeightHistoryHandler(a.weight, a.tokener))

		r.Get("/foods", handlers.NewSearchFoodsHandler(a.foods, a.tokener))
		r.Post("/foods", handlers.NewCreateFoodHandler(a.foods, a.tokener))
		r.Get("/foods/external", handlers.NewSearchExternalFoodsHandler(a.foods, a.tokener))
		r.Get("/foods/image", handlers.NewFoodImageHandler(a.foods, a.tokener))

		r.With(tx).Post("/logs", handlers.NewAddLogHandler(a.diary, a.tokener))
		r.Get("/logs/today", handlers.NewTodayLogsHandler(a.diary, a.tokener))
		r.With(tx).Delete("/logs/{logID}", handlers.NewDeleteLogHandler(a.diary, a.tokener))

		r.Get("/summary/today", handlers.NewTodaySummaryHandler(a.diary, a.tokener))
		r.Get("/summary/{date}", handlers.NewDateSummaryHandler(a.diary, a.tokener))

		r.With(tx).Post("/analyze", handlers.NewAnalyzePhotoHandler(a.analysis, a.tokener))

		r.With(tx).Post("/demo", handlers.NewGenerateDemoHandler(a.demo, a.tokener))
		r.With(tx).Delete("/demo", handlers.NewClearDemoHandler(a.demo, a.tokener))
		r.Get("/demo/status", handlers.NewDemoStatusHandler(a.demo, a.tokener))

		r.Get("/export", handlers.NewExportHandler(a.export, a.tokener))
		r.Get("/export/csv", handlers.NewExportCSVHandler(a.export, a.tokener))
	})

	return r
}
