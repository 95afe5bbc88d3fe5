package routes

import (
	orderControllers "github.com/Narinder098/Gym-project/controllers/order"
	"github.com/Narinder098/Gym-project/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Place a new order
		orders.POST("/place", orderControllers.PlaceOrderHandler(db))

		// Fetch the caller's orders
		orders.GET("/user", orderControllers.GetUserOrdersHandler(db))

		// Admin-only ledger operations
		orders.GET("/admin", middleware.RequireAdmin, orderControllers.GetAllOrdersHandler(db))
		orders.GET("/feed", middleware.RequireAdmin, orderControllers.OrderFeedHandler)
		orders.PATCH("/:orderID/status", middleware.RequireAdmin, orderControllers.UpdateOrderStatusHandler(db))
		orders.DELETE("/:orderID", middleware.RequireAdmin, orderControllers.DeleteOrderHandler(db))
	}
}
