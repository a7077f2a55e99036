package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/mibon4ik/toyota-sub000/controllers/order"
	"github.com/mibon4ik/toyota-sub000/middleware"
	"github.com/mibon4ik/toyota-sub000/store"
)

func SetupOrderRoutes(r *gin.Engine, catalog *store.CatalogStore, orders *store.OrderStore) {
	group := r.Group("/api/orders")
	{
		// Create a new order (checkout submission, guests included)
		group.POST("", orderControllers.PlaceOrderHandler(catalog, orders))

		// Admin-only reads and status changes
		group.GET("", middleware.ValidateToken, middleware.RequireAdmin, orderControllers.GetAllOrdersHandler(orders))
		group.GET("/:orderID", middleware.ValidateToken, middleware.RequireAdmin, orderControllers.GetOrderByIDHandler(orders))
		group.PUT("/:orderID/status", middleware.ValidateToken, middleware.RequireAdmin, orderControllers.UpdateOrderStatusHandler(orders))

		// websocket endpoint for real-time order updates
		group.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}
