package userControllers

import (
	"errors"
	"net/http"

	"github.com/Narinder098/Gym-project/middleware"
	"github.com/Narinder098/Gym-project/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateUserInput struct {
	Name    *string         `json:"name"`
	Address *models.Address `json:"address"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateMembershipRequest struct {
	Membership string `json:"membership" binding:"required"`
}

// GET /user
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		var user models.User
		if err := db.Preload("Cart.Items").First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// PUT /user
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Address != nil {
			updates["street"] = input.Address.Street
			updates["city"] = input.Address.City
			updates["state"] = input.Address.State
			updates["postal_code"] = input.Address.PostalCode
			updates["country"] = input.Address.Country
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update user"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "email", "name", "role", "membership", "status", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
	}
}

// PATCH /admin/users/:user_id/status
func UpdateUserStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("user_id")

		var req UpdateUserStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}
		status, err := mapAccountStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		result := db.Model(&models.User{}).Where("id = ?", id).Update("status", status)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update user status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User status updated"})
	}
}

// PATCH /admin/users/:user_id/membership
func UpdateUserMembership(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("user_id")

		var req UpdateMembershipRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}
		tier, err := mapMembership(req.Membership)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		result := db.Model(&models.User{}).Where("id = ?", id).Update("membership", tier)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update membership"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Membership updated"})
	}
}

func mapAccountStatus(status string) (models.AccountStatus, error) {
	switch status {
	case string(models.StatusActive):
		return models.StatusActive, nil
	case string(models.StatusInactive):
		return models.StatusInactive, nil
	case string(models.StatusSuspended):
		return models.StatusSuspended, nil
	default:
		return "", errors.New("invalid account status")
	}
}

func mapMembership(tier string) (models.MembershipTier, error) {
	switch tier {
	case string(models.MembershipBasic):
		return models.MembershipBasic, nil
	case string(models.MembershipPremium):
		return models.MembershipPremium, nil
	case string(models.MembershipPro):
		return models.MembershipPro, nil
	default:
		return "", errors.New("invalid membership tier")
	}
}
