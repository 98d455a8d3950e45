package routes

import (
	"github.com/gin-gonic/gin"

	paymentControllers "github.com/Vairous86/bbbeeedddooo/controllers/payment"
)

func SetupPaymentRoutes(r *gin.Engine, d Deps) {
	// Resolved settings drive which methods the payment page offers
	r.GET("/api/payment-settings", paymentControllers.GetSettingsHandler(d.DB, d.Cache))

	// Screenshot upload must succeed before order creation proceeds
	r.POST("/api/uploads/payment-screenshot", paymentControllers.UploadScreenshotHandler(d.Blobs, d.Metrics))
}
