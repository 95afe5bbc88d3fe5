package productcontroller

import (
	"errors"
	"net/http"

	"github.com/Narinder098/Gym-project/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DELETE /admin/products/:id
//
// Existing orders keep their snapshot of name and price, so deleting a
// product leaves historical orders intact; their product_id simply no
// longer resolves for display joins.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
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

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
	}
}
