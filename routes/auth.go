package routes

import (
	"github.com/Narinder098/Gym-project/auth"
	"github.com/Narinder098/Gym-project/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints plus /auth/me,
// which needs a credential.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db))
		authGroup.POST("/logout", auth.Logout())
		authGroup.GET("/me", middleware.ValidateToken, auth.Me(db))
	}
}
