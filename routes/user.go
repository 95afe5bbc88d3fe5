package routes

import (
	cartControllers "github.com/Narinder098/Gym-project/controllers/cart"
	productcontroller "github.com/Narinder098/Gym-project/controllers/product"
	userControllers "github.com/Narinder098/Gym-project/controllers/user"
	"github.com/Narinder098/Gym-project/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the public catalog reads and the JWT-protected
// profile and cart endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Browse Products (public) ────────────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))

	// ──────────────── User Profile ────────────────
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))
	}

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("/", cartControllers.GetCart(db))
		cartGroup.POST("/add", cartControllers.AddCartItem(db))
		cartGroup.POST("/remove", cartControllers.RemoveCartItem(db))
		cartGroup.POST("/clear", cartControllers.ClearCart(db))
	}
}
