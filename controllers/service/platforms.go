package serviceControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Vairous86/bbbeeedddooo/models"
)

type createPlatformRequest struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Color       string `json:"color"`
}

func GetPlatformsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var platforms []models.Platform
		if err := db.Find(&platforms).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch platforms"})
			return
		}
		c.JSON(http.StatusOK, platforms)
	}
}

func CreatePlatformHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPlatformRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		platform := models.Platform{
			ID:          req.ID,
			Slug:        req.Slug,
			Name:        req.Name,
			Description: req.Description,
			Image:       req.Image,
			Color:       req.Color,
		}
		if platform.ID == "" {
			platform.ID = uuid.NewString()
		}
		if platform.Slug == "" {
			platform.Slug = platform.ID
		}

		if err := db.Create(&platform).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create platform"})
			return
		}
		c.JSON(http.StatusCreated, platform)
	}
}

func DeletePlatformHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := db.Where("id = ?", id).Delete(&models.Platform{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete platform"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Platform deleted successfully"})
	}
}
