package productcontroller

import (
	"errors"
	"net/http"

	"github.com/Narinder098/Gym-project/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		query := db.Order("created_at DESC")
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
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
		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}
