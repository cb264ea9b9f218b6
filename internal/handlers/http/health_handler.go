package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/accounts-api/internal/handlers/dto"
	"github.com/rafabene/accounts-api/internal/services"
)

// HealthResponse é o corpo do health check
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Database string `json:"database" example:"connected"`
}

// HealthHandler expõe o health check
type HealthHandler struct {
	healthService *services.HealthService
}

// NewHealthHandler cria um novo HealthHandler
func NewHealthHandler(healthService *services.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// Health verifica a conexão com o banco
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Failure	503	{object}	dto.ErrorResponse
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.healthService.Check(c.Request.Context()); err != nil {
		dto.Abort(c, dto.UnavailableErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Database: "connected"})
}
