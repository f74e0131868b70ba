package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	orderControllers "github.com/nohsangwoo/smart-wholesale-platform-sub001/controllers/order"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/middleware"
)

func SetupOrderRoutes(r *gin.Engine, d Deps) {
	// websocket endpoint for real-time order updates
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)

	orders := r.Group("/orders")
	orders.Use(middleware.Latency(300 * time.Millisecond))
	{
		// Fetch all orders
		orders.GET("", orderControllers.GetAllOrdersHandler(d.Orders))

		// Fetch a single order
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(d.Orders))

		// Create a new order (coerces to the default mock order)
		orders.POST("", orderControllers.CreateOrderHandler(d.Orders))

		// Update order status (e.g., shipping, delivered)
		orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(d.Orders))
	}
}
