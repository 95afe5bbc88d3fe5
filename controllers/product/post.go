package productcontroller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Narinder098/Gym-project/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Stock       int             `json:"stock" binding:"min=0"`
	Description string          `json:"description" binding:"required"`
	Image       string          `json:"image" binding:"required"`
}

type BulkAddRequest struct {
	Products []ProductInput `json:"products" binding:"required,min=1,dive"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}
		if input.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Price must not be negative"})
			return
		}

		var existing models.Product
		if err := db.Where("name = ?", input.Name).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Product already exists, please update the product"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database error"})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Price:       input.Price,
			Category:    input.Category,
			Stock:       input.Stock,
			Description: input.Description,
			Image:       input.Image,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
	}
}

// POST /admin/products/bulk
func BulkAddProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BulkAddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		products := make([]models.Product, 0, len(req.Products))
		for _, input := range req.Products {
			if input.Price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Price must not be negative: " + input.Name})
				return
			}
			products = append(products, models.Product{
				Name:        input.Name,
				Price:       input.Price,
				Category:    input.Category,
				Stock:       input.Stock,
				Description: input.Description,
				Image:       input.Image,
			})
		}

		if err := db.Create(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add products"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": fmt.Sprintf("%d products added successfully", len(products)),
		})
	}
}
