package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	_ "github.com/sbilibin2017/parts-store/docs"
	"github.com/sbilibin2017/parts-store/internal/events"
	"github.com/sbilibin2017/parts-store/internal/handlers"
	"github.com/sbilibin2017/parts-store/internal/jwt"
	"github.com/sbilibin2017/parts-store/internal/logger"
	"github.com/sbilibin2017/parts-store/internal/metrics"
	"github.com/sbilibin2017/parts-store/internal/middlewares"
	"github.com/sbilibin2017/parts-store/internal/repositories"
	"github.com/sbilibin2017/parts-store/internal/services"
	"github.com/sbilibin2017/parts-store/internal/tx"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost      string
	AppPort      string
	LogLevel     string
	SecureCookie bool

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string // empty disables session revocation
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string // empty disables event publishing
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int

	AdminUsername string
	AdminPassword string
}

// @title parts-store API
// @version 1.0.0
// @description Parts catalog with stock-checked purchases and admin catalog management
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, logging, JWT and bootstrap admin configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	if cfg.SecureCookie, err = strconv.ParseBool(getEnv("APP_SECURE_COOKIE", "false")); err != nil {
		return cfg, fmt.Errorf("APP_SECURE_COOKIE: %w", err)
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "purchases")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	// Bootstrap admin
	cfg.AdminUsername = getEnv("ADMIN_USERNAME", "")
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", "")

	return cfg, nil
}

// routerDeps is what the HTTP layer needs from the rest of the application.
type routerDeps struct {
	Tokener      middlewares.Tokener
	Revocations  middlewares.RevocationChecker // nil without Redis
	Registerer   handlers.Registerer
	Loginer      handlers.Loginer
	Logouter     handlers.Logouter
	Catalog      handlers.CatalogManager
	Purchaser    handlers.Purchaser
	History      handlers.HistoryReader
	Metrics      *metrics.Metrics
	SessionTTL   time.Duration
	SecureCookie bool
	SwaggerURL   string
}

// newRouter wires every route behind the identity middleware. Browser routes
// redirect denied callers to "/", API routes answer {"error":"Unauthorized"}.
func newRouter(d routerDeps) http.Handler {
	redirectToEntry := http.HandlerFunc(handlers.RedirectToEntry)
	unauthorizedJSON := http.HandlerFunc(handlers.UnauthorizedJSON)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.AuthMiddleware(d.Tokener, d.Revocations))
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(d.Metrics.Middleware)

	// Public routes
	r.Get("/", handlers.NewIndexHandler())
	r.Get("/register", handlers.NewFormPageHandler("register", "username", "password", "role"))
	r.Post("/register", handlers.NewRegisterFormHandler(d.Registerer))
	r.Get("/login", handlers.NewFormPageHandler("login", "username", "password"))
	r.Post("/login", handlers.NewLoginHandler(d.Loginer, d.SessionTTL, d.SecureCookie))
	r.Get("/logout", handlers.NewLogoutHandler(d.Logouter))
	r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.SwaggerURL)))

	// Logged-in users
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireUser(redirectToEntry))
		r.Get("/home", handlers.NewHomeHandler(d.Catalog))
		r.Post("/purchase", handlers.NewPurchaseHandler(d.Purchaser))
	})

	// Admin pages
	r.Route("/admin", func(r chi.Router) {
		r.Use(middlewares.RequireAdmin(redirectToEntry))
		r.Get("/", handlers.NewAdminHandler(d.Catalog))
		r.Post("/", handlers.NewAdminUpdateHandler(d.Catalog))
		r.Get("/add_part", handlers.NewFormPageHandler("add_part", "name", "price", "quantity", "image"))
		r.Post("/add_part", handlers.NewAddPartHandler(d.Catalog))
		r.Get("/delete_part/{partID}", handlers.NewDeletePartHandler(d.Catalog))
		r.Post("/delete_part/{partID}", handlers.NewDeletePartHandler(d.Catalog))
		r.Get("/purchase_history", handlers.NewPurchaseHistoryPageHandler(d.History))
	})

	// Admin JSON API
	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.RequireAdmin(unauthorizedJSON))
		r.Get("/purchase_history", handlers.NewAPIPurchaseHistoryHandler(d.History))
		r.Get("/part_history/{partID}", handlers.NewAPIPartHistoryHandler(d.History))
		r.Get("/users", handlers.NewAPIUsersHandler(d.History))
		r.Get("/parts", handlers.NewAPIPartsHandler(d.Catalog))
		r.Post("/register", handlers.NewAPIRegisterHandler(d.Registerer))
	})

	return r
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Connect to Redis
	var (
		revoker     services.SessionRevoker
		revocations middlewares.RevocationChecker
	)
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()

		sessions := repositories.NewSessionRevocationRepository(rdb)
		revoker, revocations = sessions, sessions
	} else {
		log.Warn("REDIS_HOST not set, logout will not revoke sessions server-side")
	}

	// Kafka publisher
	publisher := events.NewPurchasePublisher(events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Errorw("Kafka writer close error", "error", err)
		}
	}()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	// Initialize JWT service
	sessionTTL := time.Duration(cfg.JWTExpSecond) * time.Second
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(sessionTTL))

	// Initialize repositories
	txManager := tx.NewManager(db)
	userRepo := repositories.NewUserRepository(db, tx.FromContext)
	partRepo := repositories.NewPartRepository(db, tx.FromContext)
	purchaseRepo := repositories.NewPurchaseRepository(db, tx.FromContext)

	// Initialize services
	authService := services.NewAuthService(userRepo, userRepo, tokens, revoker)
	catalogService := services.NewCatalogService(txManager, partRepo, partRepo)
	purchaseService := services.NewPurchaseService(txManager, partRepo, purchaseRepo, publisher, appMetrics)
	historyService := services.NewHistoryService(purchaseRepo, userRepo, partRepo)

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return fmt.Errorf("admin bootstrap failed: %w", err)
		}
	}

	router := newRouter(routerDeps{
		Tokener:      tokens,
		Revocations:  revocations,
		Registerer:   authService,
		Loginer:      authService,
		Logouter:     authService,
		Catalog:      catalogService,
		Purchaser:    purchaseService,
		History:      historyService,
		Metrics:      appMetrics,
		SessionTTL:   sessionTTL,
		SecureCookie: cfg.SecureCookie,
		SwaggerURL:   fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
