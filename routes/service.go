package routes

import (
	"github.com/gin-gonic/gin"

	serviceControllers "github.com/Vairous86/bbbeeedddooo/controllers/service"
)

func SetupServiceRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")
	{
		api.GET("/services", serviceControllers.GetServicesHandler(d.DB))
		api.GET("/packages", serviceControllers.GetPackagesHandler(d.DB))
		api.GET("/platforms", serviceControllers.GetPlatformsHandler(d.DB))
		api.GET("/most-requested", serviceControllers.GetMostRequestedHandler(d.DB))
	}
}
