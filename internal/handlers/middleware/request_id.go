package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/accounts-api/internal/domain/ports"
)

const (
	// RequestIDHeader é o header de correlação de requisições
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey é a chave do id da requisição no contexto do Gin
	RequestIDContextKey = "request_id"
)

// RequestID reaproveita o X-Request-ID recebido ou gera um novo
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger registra cada requisição no logger estruturado.
// O corpo nunca é registrado para não vazar senhas.
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"request_id", c.GetString(RequestIDContextKey),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request completed", args...)
		case c.Writer.Status() >= 400:
			logger.Warn("request completed", args...)
		default:
			logger.Info("request completed", args...)
		}
	}
}
