package analyticsControllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vairous86/bbbeeedddooo/models"
)

type recordEventRequest struct {
	Type      string         `json:"type" binding:"required"`
	ServiceID string         `json:"service_id"`
	Meta      models.MetaMap `json:"meta"`
}

// RecordEvent writes a funnel event row. Best-effort: callers treat a failed
// write like a dropped analytics beacon.
func RecordEvent(db *gorm.DB, eventType, serviceID string, meta models.MetaMap) {
	event := models.AnalyticsEvent{
		Type:      eventType,
		Timestamp: time.Now(),
		Meta:      meta,
	}
	if serviceID != "" {
		event.ServiceID = &serviceID
	}
	if err := db.Create(&event).Error; err != nil {
		log.Printf("failed to record %s event: %v", eventType, err)
	}
}

// RecordEventHandler accepts funnel events from the storefront.
func RecordEventHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req recordEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		go RecordEvent(db, req.Type, req.ServiceID, req.Meta)
		c.JSON(http.StatusAccepted, gin.H{"message": "Event recorded"})
	}
}
