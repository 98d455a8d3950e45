package analyticsControllers

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vairous86/bbbeeedddooo/metrics"
	"github.com/Vairous86/bbbeeedddooo/models"
)

type logVisitRequest struct {
	PageURL  string `json:"page_url" binding:"required"`
	Referrer string `json:"referrer"`
}

// LogVisitHandler records one visit per page navigation. The write is
// fire-and-forget: geo lookup and insert happen in the background and the
// endpoint always answers 202, so a storage outage never blocks the page.
func LogVisitHandler(db *gorm.DB, geo *GeoClient, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req logVisitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		query := url.Values{}
		if parsed, err := url.Parse(req.PageURL); err == nil {
			query = parsed.Query()
		}
		referrer := req.Referrer
		if referrer == "" {
			referrer = c.GetHeader("Referer")
		}

		visit := models.VisitLog{
			IPAddress:      "unknown",
			Country:        "unknown",
			City:           "unknown",
			PageURL:        req.PageURL,
			UserAgent:      c.GetHeader("User-Agent"),
			ReferrerSource: DetectSource(query, referrer),
		}
		clientIP := c.ClientIP()

		go func() {
			loc, err := geo.Lookup(context.Background(), clientIP)
			if err != nil {
				m.GeoIPRequests.WithLabelValues("error").Inc()
			} else {
				m.GeoIPRequests.WithLabelValues("ok").Inc()
				if loc.IP != "" {
					visit.IPAddress = loc.IP
				}
				if loc.Country != "" {
					visit.Country = loc.Country
				}
				if loc.City != "" {
					visit.City = loc.City
				}
			}

			if err := db.Create(&visit).Error; err != nil {
				log.Printf("failed to record visit: %v", err)
				return
			}
			m.VisitsLogged.WithLabelValues(visit.ReferrerSource).Inc()
		}()

		c.JSON(http.StatusAccepted, gin.H{"message": "Visit recorded"})
	}
}

// GetVisitsHandler lists visit rows for the admin dashboard, newest first.
func GetVisitsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var visits []models.VisitLog
		if err := db.Order("created_at DESC").Find(&visits).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, visits)
	}
}
