package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Narinder098/Gym-project/middleware"
	"github.com/Narinder098/Gym-project/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type ShippingAddressInput struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country"`
}

type PlaceOrderRequest struct {
	Items           []OrderItemInput     `json:"items" binding:"required,min=1,dive"`
	ShippingAddress ShippingAddressInput `json:"shipping_address" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// errProductNotFound distinguishes a bad product reference from a real
// persistence failure so the handler can answer 400 instead of 500.
type errProductNotFound struct{ id uint }

func (e errProductNotFound) Error() string {
	return fmt.Sprintf("product not found: %d", e.id)
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case "pending":
		return models.OrderStatusPending, nil
	case "shipped":
		return models.OrderStatusShipped, nil
	case "delivered":
		return models.OrderStatusDelivered, nil
	case "cancelled":
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// PlaceOrder runs the placement pipeline: price the submitted items against
// the catalog, persist the order, and clear the cart — the last two inside
// one transaction, so a successful order never leaves a stale cart behind.
//
// Prices are read from the catalog exactly once, here; they are frozen into
// the order items and never revisited.
func PlaceOrder(db *gorm.DB, userID string, req PlaceOrderRequest) (models.Order, error) {
	total := decimal.Zero
	var orderItems []models.OrderItem

	for _, item := range req.Items {
		var product models.Product
		if err := db.First(&product, "id = ?", item.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Order{}, errProductNotFound{id: item.ProductID}
			}
			return models.Order{}, err
		}

		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    item.Quantity,
		})
	}

	order := models.Order{
		OrderRef: generateOrderRef(),
		UserID:   userID,
		Items:    orderItems,
		ShippingAddress: models.Address{
			Street:     req.ShippingAddress.Street,
			City:       req.ShippingAddress.City,
			State:      req.ShippingAddress.State,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		},
		Total:     total,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // nothing to clear
			}
			return err
		}
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// -------- Handlers --------

// POST /orders/place
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, req)
		if err != nil {
			var notFound errProductNotFound
			if errors.As(err, &notFound) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": notFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to place order"})
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
	}
}

// GET /orders/user
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// GET /orders/admin
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// PATCH /orders/:orderID/status
//
// Any enum value can be set over any other; transitions are deliberately
// unguarded pending a product decision on the fulfillment state machine.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// DELETE /orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch order"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted"})
	}
}
