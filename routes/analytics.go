package routes

import (
	"github.com/gin-gonic/gin"

	analyticsControllers "github.com/Vairous86/bbbeeedddooo/controllers/analytics"
)

func SetupAnalyticsRoutes(r *gin.Engine, d Deps) {
	analytics := r.Group("/api/analytics")
	{
		// Fire-and-forget visit beacon, one per page navigation
		analytics.POST("/visits", analyticsControllers.LogVisitHandler(d.DB, d.Geo, d.Metrics))

		// Funnel events (add_to_cart, purchase, ...)
		analytics.POST("/events", analyticsControllers.RecordEventHandler(d.DB))
	}
}
