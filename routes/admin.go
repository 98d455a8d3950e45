package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/Vairous86/bbbeeedddooo/controllers/admin"
	analyticsControllers "github.com/Vairous86/bbbeeedddooo/controllers/analytics"
	orderControllers "github.com/Vairous86/bbbeeedddooo/controllers/order"
	paymentControllers "github.com/Vairous86/bbbeeedddooo/controllers/payment"
	serviceControllers "github.com/Vairous86/bbbeeedddooo/controllers/service"
	"github.com/Vairous86/bbbeeedddooo/middleware"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Login is public;
// everything else requires the session token.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	r.POST("/api/admin/login", adminControllers.LoginHandler())

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.ValidateToken)
	{
		adminGroup.GET("/dashboard-config", adminControllers.DashboardConfigHandler())

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(d.DB))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(d.DB, d.Policy, d.Metrics))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(d.DB))
		}

		// ─────────── Analytics ───────────
		analyticsAdmin := adminGroup.Group("/analytics")
		{
			analyticsAdmin.GET("/visits", analyticsControllers.GetVisitsHandler(d.DB))
			analyticsAdmin.GET("/stats", analyticsControllers.GetStatsHandler(d.DB))
		}
		exportAdmin := adminGroup.Group("/export")
		{
			exportAdmin.GET("/orders", analyticsControllers.ExportOrdersToExcel(d.DB))
			exportAdmin.GET("/visits", analyticsControllers.ExportVisitsToExcel(d.DB))
		}

		// ─────────── Payment Settings ───────────
		adminGroup.PUT("/payment-settings", paymentControllers.SaveSettingsHandler(d.DB, d.Cache))
		adminGroup.POST("/payment-settings/qr", paymentControllers.UploadQRHandler(d.DB, d.Blobs, d.Cache, d.Metrics))

		// ─────────── Inventory Management ───────────
		serviceAdmin := adminGroup.Group("/services")
		{
			serviceAdmin.POST("", serviceControllers.CreateServiceHandler(d.DB))
			serviceAdmin.PUT("/:id", serviceControllers.UpdateServiceHandler(d.DB))
			serviceAdmin.DELETE("/:id", serviceControllers.DeleteServiceHandler(d.DB))
		}
		packageAdmin := adminGroup.Group("/packages")
		{
			packageAdmin.POST("", serviceControllers.CreatePackageHandler(d.DB))
			packageAdmin.PUT("/:id", serviceControllers.UpdatePackageHandler(d.DB))
			packageAdmin.DELETE("/:id", serviceControllers.DeletePackageHandler(d.DB))
		}
		platformAdmin := adminGroup.Group("/platforms")
		{
			platformAdmin.POST("", serviceControllers.CreatePlatformHandler(d.DB))
			platformAdmin.DELETE("/:id", serviceControllers.DeletePlatformHandler(d.DB))
		}
		adminGroup.PUT("/most-requested", serviceControllers.UpsertMostRequestedHandler(d.DB))
		adminGroup.POST("/uploads/service-image", serviceControllers.UploadServiceImageHandler(d.Blobs, d.Metrics))
	}
}
