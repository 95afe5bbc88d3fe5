package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Narinder098/Gym-project/middleware"
	"github.com/Narinder098/Gym-project/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AddItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
}

type RemoveItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// POST /cart/add
//
// Lazily creates the user's cart and merges the quantity with an atomic
// upsert on (cart_id, product_id), so two tabs adding the same product
// both land.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		var product models.Product
		if err := db.First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to validate product"})
			return
		}

		var cart models.Cart
		if err := db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load cart"})
			return
		}

		item := models.CartItem{
			CartID:    cart.CartID,
			ProductID: product.ID,
			Quantity:  req.Quantity,
			AddedAt:   time.Now(),
		}
		if err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
				"added_at": time.Now(),
			}),
		}).Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add item to cart"})
			return
		}

		if err := db.Preload("Items").First(&cart, cart.CartID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}

// POST /cart/remove
//
// Removing an absent product is a no-op, not an error.
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		var req RemoveItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"success": true, "cart": models.Cart{UserID: userID, Items: []models.CartItem{}}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load cart"})
			return
		}

		if err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, req.ProductID).
			Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove item"})
			return
		}

		if err := db.Preload("Items").First(&cart, cart.CartID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}

// POST /cart/clear
//
// Empties the items but keeps the cart row.
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared"})
	}
}

// GET /cart
//
// Always returns a cart, an empty one if the user never added anything.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}

// GET /admin/users/:user_id/cart
func GetUserCartAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "user_id is required"})
			return
		}

		cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}

func loadCart(db *gorm.DB, userID string) (models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return models.Cart{}, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}
