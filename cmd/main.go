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
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/css-society/events-api/internal/bus"
	"github.com/css-society/events-api/internal/content"
	"github.com/css-society/events-api/internal/handlers"
	"github.com/css-society/events-api/internal/jwt"
	"github.com/css-society/events-api/internal/logger"
	"github.com/css-society/events-api/internal/middlewares"
	"github.com/css-society/events-api/internal/pdf"
	"github.com/css-society/events-api/internal/repositories"
	"github.com/css-society/events-api/internal/services"

	_ "github.com/css-society/events-api/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title CSS Events API
// @version 1.0.0
// @description Backend for the Computer Science Society event catalog, registrations and participation certificates
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		certTemplatePath, logLevel,
		jwtSecret, jwtExp, cacheTTL,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		certTemplatePath, logLevel,
		jwtSecret, jwtExp, cacheTTL,
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
// application, database, Redis, Kafka, certificate, logging, and JWT
// configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	certTemplatePath, logLevel string,
	jwtSecretKey string, jwtExpSecond, cacheTTLSecond int,
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
	pgDB = getEnv("POSTGRES_DB", "events")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if cacheTTLSecond, err = strconv.Atoi(getEnv("CATALOG_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config, empty address disables the registration feed
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "event-registrations")

	// Certificate config
	certTemplatePath = getEnv("CERT_TEMPLATE_PATH", "assets/certificate-template.png")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	certTemplatePath, logLevel string,
	jwtSecretKey string, jwtExpSecond, cacheTTLSecond int,
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

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka registration feed, optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka registration feed enabled: %s topic %s", kafkaAddr, kafkaTopic)
	} else {
		logger.Log.Info("Kafka registration feed disabled")
	}

	// Initialize JWT service
	jwtService := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	eventReadRepo := repositories.NewEventReadRepository(db)
	eventWriteRepo := repositories.NewEventWriteRepository(db)
	regWriteRepo := repositories.NewRegistrationWriteRepository(db, middlewares.GetTxFromContext)
	regReadRepo := repositories.NewRegistrationReadRepository(db)
	profileReadRepo := repositories.NewProfileReadRepository(db)
	profileWriteRepo := repositories.NewProfileWriteRepository(db)
	certWriteRepo := repositories.NewCertificateWriteRepository(db)
	certReadRepo := repositories.NewCertificateReadRepository(db)
	catalogCache := repositories.NewCatalogCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)

	// Initialize services
	signals := bus.New()
	catalogService := services.NewCatalogService(eventReadRepo, catalogCache, content.Events(), signals)
	registrationService := services.NewRegistrationService(
		catalogService, regWriteRepo, regReadRepo, eventWriteRepo, profileReadRepo, kafkaWriter)
	profileService := services.NewProfileService(profileReadRepo, profileWriteRepo)
	certificateService := services.NewCertificateService(
		regReadRepo, catalogService, profileReadRepo, certWriteRepo, certReadRepo)
	renderer := pdf.NewCertificateRenderer(certTemplatePath)

	// Initialize handlers
	eventsHandler := handlers.NewEventsHandler(catalogService)
	registerHandler := handlers.NewRegisterHandler(registrationService)
	dashboardHandler := handlers.NewDashboardHandler(registrationService)
	getProfileHandler := handlers.NewGetProfileHandler(profileService)
	completeProfileHandler := handlers.NewCompleteProfileHandler(profileService, profileService)
	eligibilityHandler := handlers.NewEligibilityHandler(certificateService)
	downloadCertHandler := handlers.NewDownloadCertificateHandler(certificateService, renderer)
	listCertsHandler := handlers.NewListCertificatesHandler(certificateService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(jwtService)
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Get("/events", eventsHandler)
		r.Get("/certificates", listCertsHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.With(txMiddleware).Post("/events/{slug}/register", registerHandler)
			r.Get("/dashboard", dashboardHandler)
			r.Get("/profile", getProfileHandler)
			r.Put("/profile", completeProfileHandler)
			r.Get("/certificates/eligibility", eligibilityHandler)
			r.Post("/certificates/download", downloadCertHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

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
