package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vairous86/bbbeeedddooo/config"
)

// ValidateAPIKey protects the metrics endpoint from the open internet.
func ValidateAPIKey(c *gin.Context) {
	apiKey := c.GetHeader("X-API-KEY")
	if apiKey == "" || apiKey != config.AppConfig.Metrics.APIKey {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
		c.Abort()
		return
	}
	c.Next()
}
