// cmd/ggea-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/ggea-team/gotta-guess-em-all/internal/api/rest/v1"
	"github.com/ggea-team/gotta-guess-em-all/internal/app"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/pokemonimages"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"
	"github.com/ggea-team/gotta-guess-em-all/internal/infrastructure/connector"
	"github.com/ggea-team/gotta-guess-em-all/internal/infrastructure/cryptography"
	"github.com/ggea-team/gotta-guess-em-all/internal/infrastructure/persistence"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultConfigPath = "../../configs/rest-app.yaml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration; CONFIG_PATH takes precedence
	restConfig, err := config.InitializeRestConfig(defaultConfigPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	if restConfig.Environment == config.EnvironmentProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("Failed to close database: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *appServices
}

type appServices struct {
	auth         accounts.AuthService
	account      accounts.AccountService
	profile      profiles.ProfileService
	pokemonImage pokemonimages.PokemonImageService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	services, err := initializeApplicationServices(cfg, db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		services: services,
	}, nil
}

// initializeApplicationServices wires repositories, connectors and security components into services
func initializeApplicationServices(cfg *config.RestConfig, db *gorm.DB, log logger.Logger) (*appServices, error) {
	// Initialize repositories
	accountRepo, err := persistence.NewGormAccountRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account repository: %w", err)
	}

	profileRepo, err := persistence.NewGormProfileRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}

	pokemonImageRepo, err := persistence.NewGormPokemonImageRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create pokemon image repository: %w", err)
	}

	// Initialize connectors
	blobConnector, err := connector.NewBlobConnector(context.Background(), &cfg.BlobConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob connector: %w", err)
	}
	log.Info("Blob connector initialized for provider ", cfg.BlobConnector.CloudProvider)

	mailer, err := connector.NewVerificationMailer(&cfg.Mail, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create verification mailer: %w", err)
	}

	// Initialize security components
	passwordManager, err := cryptography.NewPasswordManager(&cfg.Security, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create password manager: %w", err)
	}

	tokenManager, err := cryptography.NewJWTManager(&cfg.Security)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT manager: %w", err)
	}

	otpManager := cryptography.NewOTPManager(cfg.Security.OTPIssuer)

	// Initialize services
	authService, err := app.NewAuthService(accountRepo, profileRepo, passwordManager, tokenManager, otpManager,
		mailer, cfg.Security.OTPLoginWindow, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	accountService, err := app.NewAccountService(accountRepo, profileRepo, pokemonImageRepo, blobConnector,
		passwordManager, tokenManager, cfg.BlobConnector.PokemonImageDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	profileService, err := app.NewProfileService(profileRepo, blobConnector, cfg.BlobConnector.ProfilePhotoDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}

	pokemonImageService, err := app.NewPokemonImageService(pokemonImageRepo, profileRepo, blobConnector,
		cfg.BlobConnector.PokemonImageDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create pokemon image service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		auth:         authService,
		account:      accountService,
		profile:      profileService,
		pokemonImage: pokemonImageService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Cors.AllowOrigins,
		AllowMethods:     cfg.Cors.AllowMethods,
		AllowHeaders:     append(cfg.Cors.AllowHeaders, cfg.Security.AuthHeaderName),
		ExposeHeaders:    cfg.Cors.ExposeHeaders,
		AllowCredentials: cfg.Cors.AllowCredentials,
		MaxAge:           cfg.Cors.MaxAge,
	}))

	// Setup API routes; background sweeps stop with the server
	routesCtx, stopRoutes := context.WithCancel(context.Background())
	defer stopRoutes()
	v1.SetupRoutes(routesCtx, r,
		deps.services.auth,
		deps.services.account,
		deps.services.profile,
		deps.services.pokemonImage,
		&cfg.Security,
		&cfg.RateLimit,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if err := deps.services.auth.Close(ctx); err != nil {
		log.Error("Verification emails still pending at shutdown: ", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
