package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configura CORS para a aplicação a partir de uma lista separada por vírgulas
func CORS(allowedOrigins string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if o == "*" {
			config.AllowAllOrigins = true
			config.AllowOrigins = nil
			break
		}
		config.AllowOrigins = append(config.AllowOrigins, o)
	}

	if !config.AllowAllOrigins {
		config.AllowCredentials = true
		if len(config.AllowOrigins) == 0 {
			config.AllowAllOrigins = true
			config.AllowCredentials = false
		}
	}

	return cors.New(config)
}
