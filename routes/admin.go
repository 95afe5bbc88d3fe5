package routes

import (
	cartControllers "github.com/Narinder098/Gym-project/controllers/cart"
	productcontroller "github.com/Narinder098/Gym-project/controllers/product"
	userControllers "github.com/Narinder098/Gym-project/controllers/user"
	"github.com/Narinder098/Gym-project/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a valid
// token plus the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.POST("/bulk", productcontroller.BulkAddProducts(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── User Management ───────────
		userAdmin := adminGroup.Group("/users")
		{
			userAdmin.GET("", userControllers.GetAllUsers(db))
			userAdmin.PATCH("/:user_id/status", userControllers.UpdateUserStatus(db))
			userAdmin.PATCH("/:user_id/membership", userControllers.UpdateUserMembership(db))
			userAdmin.GET("/:user_id/cart", cartControllers.GetUserCartAdmin(db))
		}
	}
}
