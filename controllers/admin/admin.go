package adminControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Vairous86/bbbeeedddooo/config"
)

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// checkPassword verifies the shared dashboard password. A bcrypt hash is
// preferred; the plain-text env value is a fallback for local setups.
func checkPassword(candidate string) bool {
	admin := config.AppConfig.Admin
	if admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(candidate)) == nil
	}
	return admin.Password != "" && candidate == admin.Password
}

// LoginHandler exchanges the shared admin password for a session token.
// This is a single shared credential, not an account system.
func LoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !checkPassword(req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
			return
		}

		admin := config.AppConfig.Admin
		claims := jwt.MapClaims{
			"role": "admin",
			"exp":  time.Now().Add(time.Duration(admin.JWTExpiryHours) * time.Hour).Unix(),
			"iat":  time.Now().Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(admin.JWTSecret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": signed})
	}
}

// DashboardConfigHandler hands the dashboard its polling interval so the
// client carries no ambient defaults of its own.
func DashboardConfigHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"refresh_seconds": config.AppConfig.Admin.RefreshSeconds,
		})
	}
}
