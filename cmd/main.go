package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	_ "netflix-backend/docs"
	"netflix-backend/internal/config"
	"netflix-backend/internal/handlers"
	"netflix-backend/internal/normalizer"
	"netflix-backend/internal/repository"
	"netflix-backend/internal/routes"
	"netflix-backend/internal/services"
	"netflix-backend/internal/storage"
	"netflix-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title Netflix Backend API
// @version 1.0
// @description Movie browsing backend: search API adapter with fallback catalog, mock auth and recent searches

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load environment variables
	loadEnvFile()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	log := setupLogger(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}

	// Open blob store
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := storage.Open(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store.Driver, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Errorf("Error closing store: %v", err)
		}
	}()

	norm, err := newNormalizer(cfg.Normalizer, log)
	if err != nil {
		log.Fatalf("Failed to initialize normalizer: %v", err)
	}

	accountRepo := repository.NewAccountRepository(store)
	tokens := services.TokenService{
		Secret:   []byte(cfg.Auth.JWTSecret),
		Issuer:   cfg.Auth.JWTIssuer,
		Duration: cfg.Auth.JWTDuration,
	}
	authService := services.NewAuthService(accountRepo, tokens, validation.New(), log)
	catalogService := services.NewCatalogService(services.NewSearchClient(cfg.Search, log), norm, cfg.Search, log)
	historyService := services.NewHistoryService(accountRepo)

	app := fiber.New(fiber.Config{
		AppName:               "Netflix Backend API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          handlers.ErrorHandler(log),
	})

	setupMiddleware(app, cfg.Server.AllowOrigins)

	routes.Setup(app, routes.Handlers{
		System:  handlers.NewSystemHandler(store, cfg, log),
		Auth:    handlers.NewAuthHandler(authService, log),
		Catalog: handlers.NewCatalogHandler(catalogService, historyService, log),
	}, authService)

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.WithFields(logrus.Fields{
		"port":  cfg.Server.Port,
		"store": cfg.Store.Driver,
		"env":   cfg.Server.Environment,
	}).Info("Netflix Backend API starting")
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func newNormalizer(cfg config.NormalizerConfig, log *logrus.Logger) (*normalizer.Normalizer, error) {
	policy := normalizer.DefaultPolicy()
	if cfg.PolicyFile != "" {
		loaded, err := normalizer.LoadPolicy(cfg.PolicyFile)
		if err != nil {
			return nil, err
		}
		policy = loaded
		log.WithField("file", cfg.PolicyFile).Info("Normalizer policy loaded")
	}

	var opts []normalizer.Option
	if cfg.Seed != 0 {
		opts = append(opts, normalizer.WithSeed(uint64(cfg.Seed)))
	}
	return normalizer.New(policy, log, opts...)
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if cfg.IsDevelopment() {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func setupMiddleware(app *fiber.App, allowOrigins string) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     normalizeOrigins(allowOrigins),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS, PATCH",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))
}

func normalizeOrigins(origins string) string {
	parts := strings.Split(origins, ",")
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) == 0 {
		return "*"
	}
	return strings.Join(cleaned, ",")
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
