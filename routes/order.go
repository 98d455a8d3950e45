package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/Vairous86/bbbeeedddooo/controllers/order"
)

func SetupOrderRoutes(r *gin.Engine, d Deps) {
	orders := r.Group("/api/orders")
	{
		// Create orders (free/text or paid cart)
		orders.POST("", orderControllers.CreateOrderHandler(d.DB, d.Cache, d.Metrics))

		// Confirmation page lookup by created ids (?ids=a,b)
		orders.GET("", orderControllers.GetOrdersByIDsHandler(d.DB))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Fetch a single order
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(d.DB))
	}
}
