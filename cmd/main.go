package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/segmentio/kafka-go"

	"github.com/supermaker/experiments-api/internal/handlers"
	"github.com/supermaker/experiments-api/internal/jwt"
	"github.com/supermaker/experiments-api/internal/logger"
	"github.com/supermaker/experiments-api/internal/middlewares"
	"github.com/supermaker/experiments-api/internal/migrations"
	"github.com/supermaker/experiments-api/internal/repositories"
	"github.com/supermaker/experiments-api/internal/services"
	"github.com/supermaker/experiments-api/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title experiments-api
// @version 1.0.0
// @description Multi-tenant backend for CSV uploads and trainable classification experiments
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		uploadDir, modelDir,
		kafkaAddr, kafkaTopic,
		logLevel, jwtSecret, jwtExp, trainPollSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		uploadDir, modelDir,
		kafkaAddr, kafkaTopic,
		logLevel, jwtSecret, jwtExp, trainPollSecond,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, storage, Kafka, logging, JWT and trainer
// configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	uploadDir, modelDir string,
	kafkaAddr, kafkaTopic string,
	logLevel, jwtSecretKey string, jwtExpSecond, trainPollSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Blob storage roots
	uploadDir = getEnv("UPLOAD_DIR", "./uploads")
	modelDir = getEnv("MODEL_DIR", "./models")

	// Kafka config; empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "training-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Trainer config
	if trainPollSecond, err = strconv.Atoi(getEnv("TRAIN_POLL_SECOND", "1")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, storage, Kafka writer and HTTP
// server. It sets up routes, starts the training worker, applies middleware
// and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	uploadDir, modelDir string,
	kafkaAddr, kafkaTopic string,
	logLevel, jwtSecretKey string, jwtExpSecond, trainPollSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Fatal("migrations failed:", err)
	}

	// Initialize blob storage
	uploads, err := storage.New(uploadDir)
	if err != nil {
		logger.Log.Fatal("upload storage error:", err)
	}
	modelStore, err := storage.New(modelDir)
	if err != nil {
		logger.Log.Fatal("model storage error:", err)
	}

	// Initialize Kafka writer (optional)
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer initialized for %s/%s", kafkaAddr, kafkaTopic)
	}

	// Initialize JWT service
	jwt := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	fileReadRepo := repositories.NewFileReadRepository(db)
	fileWriteRepo := repositories.NewFileWriteRepository(db)
	experimentReadRepo := repositories.NewExperimentReadRepository(db)
	experimentWriteRepo := repositories.NewExperimentWriteRepository(db)
	jobRepo := repositories.NewTrainingJobRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwt)
	userService := services.NewUserService(userReadRepo, userWriteRepo, experimentReadRepo, uploads, modelStore)
	fileService := services.NewFileService(fileReadRepo, fileWriteRepo, uploads)
	experimentService := services.NewExperimentService(
		fileReadRepo, experimentReadRepo, experimentWriteRepo, jobRepo,
		uploads, modelStore, kafkaWriter,
	)
	trainerService := services.NewTrainerService(
		jobRepo, fileReadRepo, experimentReadRepo, experimentWriteRepo,
		uploads, modelStore, kafkaWriter,
		time.Duration(trainPollSecond)*time.Second,
	)

	// Graceful shutdown context, shared with the trainer
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go trainerService.Run(ctxShutdown)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(authService))
	r.Post("/login", handlers.NewLoginHandler(authService))

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(jwt)
	txMiddleware := middlewares.TxMiddleware(db)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/me", handlers.NewMeHandler(userService, jwt))
		r.With(txMiddleware).Delete("/me", handlers.NewDeleteMeHandler(userService, jwt))

		r.Route("/files", func(r chi.Router) {
			r.Get("/", handlers.NewFileListHandler(fileService, jwt))
			r.Get("/{id}", handlers.NewFileGetHandler(fileService, jwt))
			r.Get("/download/{id}", handlers.NewFileDownloadHandler(fileService, jwt))
			r.With(txMiddleware).Post("/", handlers.NewFileUploadHandler(fileService, jwt))
			r.With(txMiddleware).Patch("/{id}", handlers.NewFileUpdateHandler(fileService, jwt))
			r.With(txMiddleware).Delete("/{id}", handlers.NewFileDeleteHandler(fileService, jwt))
		})

		r.Route("/experiments", func(r chi.Router) {
			r.Get("/", handlers.NewExperimentListHandler(experimentService, jwt))
			r.Get("/{id}", handlers.NewExperimentGetHandler(experimentService, jwt))
			r.Post("/model/{id}", handlers.NewPredictHandler(experimentService, jwt))
			r.With(txMiddleware).Post("/", handlers.NewExperimentCreateHandler(experimentService, jwt))
			r.With(txMiddleware).Post("/live/{id}", handlers.NewExperimentLiveHandler(experimentService, jwt))
			r.With(txMiddleware).Delete("/{id}", handlers.NewExperimentDeleteHandler(experimentService, jwt))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	errChan := make(chan error, 1)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
