package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/accounts-api/internal/domain/ports"
	httphandlers "github.com/rafabene/accounts-api/internal/handlers/http"
	"github.com/rafabene/accounts-api/internal/infrastructure/config"
	"github.com/rafabene/accounts-api/internal/infrastructure/i18n"
	"github.com/rafabene/accounts-api/internal/infrastructure/logging"
	"github.com/rafabene/accounts-api/internal/infrastructure/persistence/gormstore"
	"github.com/rafabene/accounts-api/internal/infrastructure/security"
	"github.com/rafabene/accounts-api/internal/services"
)

//	@title			Accounts API
//	@version		1.0
//	@description	API de contas de usuário com perfil opcional.
//	@BasePath		/

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting accounts api",
		"env", cfg.Env,
		"db_driver", cfg.Database.Driver,
	)

	// Conectar ao banco de dados
	store, err := gormstore.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	i18nService := loadTranslations(cfg, logger)

	// Inicializar repositories
	userRepo := gormstore.NewUserRepository(store)
	profileRepo := gormstore.NewProfileRepository(store)
	uow := gormstore.NewUnitOfWork(store)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		I18n:           i18nService,
		Logger:         logger,
		UserService:    services.NewUserService(userRepo, uow, security.NewPBKDF2Hasher(), logger),
		ProfileService: services.NewProfileService(userRepo, profileRepo, uow, logger),
		HealthService:  services.NewHealthService(store, logger),
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// loadTranslations usa LOCALES_DIR quando existir, senão as traduções embutidas no binário
func loadTranslations(cfg *config.Config, logger ports.Logger) *i18n.Service {
	i18nService, err := i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Warn("locales dir unavailable, using embedded translations",
			"dir", cfg.I18n.LocalesDir,
			"error", err,
		)
		i18nService, err = i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
		if err != nil {
			logger.Error("failed to initialize i18n", "error", err)
			log.Fatal(err)
		}
	}

	for lang, keys := range i18nService.MissingKeys() {
		logger.Warn("incomplete locale, falling back to default language", "language", lang, "missing", keys)
	}

	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)
	return i18nService
}
