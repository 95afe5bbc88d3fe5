package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/Narinder098/Gym-project/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by ValidateToken for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// SessionCookie is the HTTP-only cookie set at login so browser clients
// work without managing the bearer token themselves.
const SessionCookie = "session_token"

// ValidateToken resolves the caller's identity from either the
// Authorization header (canonical) or the session cookie, and stores
// {user_id, role} in the request context. It does not touch the database.
func ValidateToken(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		if cookie, err := c.Cookie(SessionCookie); err == nil {
			tokenString = cookie
		}
	}
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token claims"})
		c.Abort()
		return
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token claims"})
		c.Abort()
		return
	}

	c.Set(CtxUserID, userID)
	c.Set(CtxRole, role)
	c.Next()
}

// RequireAdmin is the second gate applied on top of ValidateToken for
// admin-only operations.
func RequireAdmin(c *gin.Context) {
	role, _ := c.Get(CtxRole)
	if role != string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden"})
		c.Abort()
		return
	}
	c.Next()
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
}
