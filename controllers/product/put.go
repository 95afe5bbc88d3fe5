package productcontroller

import (
	"errors"
	"net/http"

	"github.com/Narinder098/Gym-project/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UpdateProductInput struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Stock       *int             `json:"stock"`
	Description *string          `json:"description"`
	Image       *string          `json:"image"`
}

// PUT /admin/products/:id
//
// Partial update: only supplied fields change. Price edits never touch
// already-placed orders, which carry their own snapshots.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch product"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Price != nil {
			if input.Price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Price must not be negative"})
				return
			}
			updates["price"] = *input.Price
		}
		if input.Category != nil {
			updates["category"] = *input.Category
		}
		if input.Stock != nil {
			updates["stock"] = *input.Stock
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}

		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No fields provided for update"})
			return
		}

		if err := db.Model(&product).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}
