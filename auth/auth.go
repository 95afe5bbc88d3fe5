package auth

import (
	"errors"
	"net/http"

	"github.com/Narinder098/Gym-project/middleware"
	"github.com/Narinder098/Gym-project/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email     string          `json:"email" binding:"required,email"`
	Password  string          `json:"password" binding:"required"`
	LocalCart []LocalCartItem `json:"local_cart" binding:"omitempty,dive"`
}

// LocalCartItem mirrors the browser-side cart entries submitted at login
// so pre-login shopping survives authentication.
type LocalCartItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

const cookieMaxAge = 7 * 24 * 60 * 60

// POST /auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		var existing models.User
		if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User already exists, please login"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database error"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to hash password"})
			return
		}

		user := models.User{
			ID:         uuid.NewString(),
			Name:       req.Name,
			Email:      req.Email,
			Password:   string(hashed),
			Role:       models.RoleMember,
			Membership: models.MembershipBasic,
			Status:     models.StatusActive,
			Cart:       models.Cart{},
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create user"})
			return
		}

		token, err := issueToken(user.ID, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Token generation failed"})
			return
		}
		setSessionCookie(c, token)

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Signup successful",
			"token":   token,
			"user":    user,
		})
	}
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}
		if user.Status == models.StatusSuspended {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Account suspended"})
			return
		}

		mergeStatus := "no-local-cart"
		if len(req.LocalCart) > 0 {
			merged, err := mergeLocalCart(db, user.ID, req.LocalCart)
			switch {
			case err != nil:
				mergeStatus = "merge-failed"
			case merged:
				mergeStatus = "merged"
			default:
				mergeStatus = "nothing-to-merge"
			}
		}

		token, err := issueToken(user.ID, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Token generation failed"})
			return
		}
		setSessionCookie(c, token)

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"message":      "Login successful",
			"merge_status": mergeStatus,
			"token":        token,
			"user":         user,
		})
	}
}

// POST /auth/logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
	}
}

// GET /auth/me
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get(middleware.CtxUserID)
		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, cookieMaxAge, "/", "", false, true)
}
