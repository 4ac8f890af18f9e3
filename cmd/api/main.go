package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	donationUseCase "github.com/upendo-clinic/donation-ledger/internal/domain/usecase/donation"
	supporterUseCase "github.com/upendo-clinic/donation-ledger/internal/domain/usecase/supporter"

	"github.com/upendo-clinic/donation-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/upendo-clinic/donation-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/upendo-clinic/donation-ledger/internal/infrastructure/adapter/database"
	"github.com/upendo-clinic/donation-ledger/internal/infrastructure/adapter/logger"
	"github.com/upendo-clinic/donation-ledger/internal/infrastructure/adapter/mpesa"
	"github.com/upendo-clinic/donation-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/upendo-clinic/donation-ledger/internal/infrastructure/adapter/time"
	"github.com/upendo-clinic/donation-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay.Seconds()),
	}

	if err := dbConfig.Validate(); err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories. The manager bounds every query with the
	// configured timeout.
	donationRepo := repository.NewDonationRepository(dbManager.DB(), dbManager, appLogger)
	supporterRepo := repository.NewSupporterRepository(dbManager.DB(), dbManager, appLogger)

	// Daraja payment gateway. Credential problems surface here, before the
	// server accepts its first donation.
	tokenCache := mpesa.NewMemoryTokenCache()
	gateway, err := mpesa.NewClient(cfg.Mpesa, tokenCache, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to configure payment gateway", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize use cases
	supporterService := supporterUseCase.NewService(supporterRepo, tp, appLogger)
	donationService := donationUseCase.NewService(donationRepo, supporterService, gateway, tp, appLogger)

	// Initialize API handlers
	donationHandler := handler.NewDonationHandler(donationService, appLogger)
	callbackHandler := handler.NewCallbackHandler(donationService, appLogger)
	supporterHandler := handler.NewSupporterHandler(supporterService, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager.DB())

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, donationHandler, callbackHandler, supporterHandler, healthHandler,
		cfg.Mpesa.CallbackSecret, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("DL_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or DL_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("DL_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or DL_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("DL_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or DL_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("DL_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or DL_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate M-Pesa partner configuration. These are always required: the
	// service exists to take payments.
	if cfg.Mpesa.ConsumerKey == "" {
		missingConfigs = append(missingConfigs, "mpesa.consumerKey (or DL_MPESA_CONSUMER_KEY environment variable)")
	}
	if cfg.Mpesa.ConsumerSecret == "" {
		missingConfigs = append(missingConfigs, "mpesa.consumerSecret (or DL_MPESA_CONSUMER_SECRET environment variable)")
	}
	if cfg.Mpesa.Passkey == "" {
		missingConfigs = append(missingConfigs, "mpesa.passkey (or DL_MPESA_PASSKEY environment variable)")
	}
	if cfg.Mpesa.ShortCode == "" {
		missingConfigs = append(missingConfigs, "mpesa.shortCode (or DL_MPESA_SHORT_CODE environment variable)")
	}
	if cfg.Mpesa.CallbackURL == "" {
		missingConfigs = append(missingConfigs, "mpesa.callbackURL (or DL_MPESA_CALLBACK_URL environment variable)")
	}
	if cfg.Mpesa.Environment != "sandbox" && cfg.Mpesa.Environment != config.Production {
		return fmt.Errorf("invalid mpesa environment value: %s, must be sandbox or production", cfg.Mpesa.Environment)
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, warn about insecure settings
	if cfg.Environment == config.Production {
		var warnings []string

		if strings.ToLower(cfg.Database.SSLMode) != "require" && strings.ToLower(cfg.Database.SSLMode) != "verify-ca" && strings.ToLower(cfg.Database.SSLMode) != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if cfg.Mpesa.CallbackSecret == "" {
			warnings = append(warnings, "mpesa.callbackSecret should be set in production to guard the callback endpoint")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
