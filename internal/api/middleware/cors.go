package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GranTechDigital/crewflow-sub006/config"
)

// CORS libera as origens configuradas
func CORS(cfg *config.CORSConfig) gin.HandlerFunc {
	permitidas := make(map[string]bool, len(cfg.AllowOrigins))
	for _, o := range cfg.AllowOrigins {
		permitidas[o] = true
	}

	return func(c *gin.Context) {
		origem := c.GetHeader("Origin")
		if origem != "" && (permitidas["*"] || permitidas[origem]) {
			c.Header("Access-Control-Allow-Origin", origem)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
