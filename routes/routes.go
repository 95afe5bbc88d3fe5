package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, User, Order,
// and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Order routes (JWT-protected; admin sub-operations role-gated)
	SetupOrderRoutes(r, db)

	// Admin routes (JWT + admin role)
	SetupAdminRoutes(r, db)
}
