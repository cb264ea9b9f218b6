package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/accounts-api/docs" // registra a especificação OpenAPI
	"github.com/rafabene/accounts-api/internal/domain/ports"
	"github.com/rafabene/accounts-api/internal/handlers/dto"
	"github.com/rafabene/accounts-api/internal/handlers/middleware"
	"github.com/rafabene/accounts-api/internal/infrastructure/i18n"
	"github.com/rafabene/accounts-api/internal/services"
)

// RouterConfig agrupa as dependências das rotas
type RouterConfig struct {
	BaseURL        string
	AllowedOrigins string
	I18n           *i18n.Service
	Logger         ports.Logger

	UserService    *services.UserService
	ProfileService *services.ProfileService
	HealthService  *services.HealthService
}

// NewRouter monta o engine Gin com middlewares e rotas
func NewRouter(cfg RouterConfig) *gin.Engine {
	dto.RegisterValidation()

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(cfg.Logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		cfg.Logger.Error("panic recovered", "panic", recovered, "path", c.Request.URL.Path)
		dto.Abort(c, dto.InternalErrorResponseI18n(c))
	}))
	router.Use(middleware.NewI18nMiddleware(cfg.I18n).DetectLanguage())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.NoRoute(func(c *gin.Context) {
		dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "error.not_found.detail",
			map[string]interface{}{"Resource": c.Request.URL.Path}))
	})
	router.NoMethod(func(c *gin.Context) {
		dto.Abort(c, dto.MethodNotAllowedErrorResponseI18n(c))
	})

	userHandler := NewUserHandler(cfg.UserService, cfg.Logger)
	profileHandler := NewProfileHandler(cfg.ProfileService, cfg.Logger)
	healthHandler := NewHealthHandler(cfg.HealthService)

	router.GET("/health", healthHandler.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := router.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PATCH("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)

		users.POST("/:id/profile", profileHandler.CreateOrReplaceProfile)
		users.GET("/:id/profile", profileHandler.GetProfile)
		users.DELETE("/:id/profile", profileHandler.DeleteProfile)
	}

	return router
}
