package serviceControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Vairous86/bbbeeedddooo/models"
)

type mostRequestedItem struct {
	ServiceID string `json:"service_id" binding:"required"`
	Visible   bool   `json:"visible"`
	Position  *int   `json:"position"`
}

func GetMostRequestedHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.MostRequested
		if err := db.Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch most requested"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// UpsertMostRequestedHandler replaces the featured-services curation. Rows
// are keyed by service id, so resubmitting the same list is idempotent.
func UpsertMostRequestedHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []mostRequestedItem
		if err := c.ShouldBindJSON(&items); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		for _, it := range items {
			row := models.MostRequested{
				ID:        it.ServiceID,
				ServiceID: it.ServiceID,
				Visible:   it.Visible,
				Position:  it.Position,
			}
			if err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&row).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save most requested"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Most requested updated"})
	}
}
