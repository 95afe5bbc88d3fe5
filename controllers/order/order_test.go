package orderControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Narinder098/Gym-project/middleware"
	"github.com/Narinder098/Gym-project/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func asUser(userID string, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
		c.Set(middleware.CtxRole, string(role))
		c.Next()
	}
}

// orderRouter mirrors the production wiring, including the admin gate on
// the ledger operations.
func orderRouter(db *gorm.DB, userID string, role models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/orders", asUser(userID, role))
	grp.POST("/place", PlaceOrderHandler(db))
	grp.GET("/user", GetUserOrdersHandler(db))
	grp.GET("/admin", middleware.RequireAdmin, GetAllOrdersHandler(db))
	grp.PATCH("/:orderID/status", middleware.RequireAdmin, UpdateOrderStatusHandler(db))
	grp.DELETE("/:orderID", middleware.RequireAdmin, DeleteOrderHandler(db))
	return r
}

func seedUser(t *testing.T, db *gorm.DB, id string, role models.Role) models.User {
	t.Helper()
	u := models.User{
		ID:       id,
		Name:     "Test " + id,
		Email:    id + "@example.com",
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price int64) models.Product {
	t.Helper()
	p := models.Product{
		Name:        name,
		Price:       decimal.NewFromInt(price),
		Category:    "equipment",
		Stock:       50,
		Description: name,
		Image:       "/img/" + name + ".jpg",
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedCart(t *testing.T, db *gorm.DB, userID string, items map[uint]int) models.Cart {
	t.Helper()
	cart := models.Cart{UserID: userID}
	require.NoError(t, db.Create(&cart).Error)
	for pid, qty := range items {
		require.NoError(t, db.Create(&models.CartItem{
			CartID:    cart.CartID,
			ProductID: pid,
			Quantity:  qty,
		}).Error)
	}
	return cart
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func validAddress() gin.H {
	return gin.H{
		"street":      "1 Main St",
		"city":        "Springfield",
		"state":       "IL",
		"postal_code": "62701",
		"country":     "USA",
	}
}

type placeResponse struct {
	Success bool         `json:"success"`
	Order   models.Order `json:"order"`
}

type listResponse struct {
	Success bool           `json:"success"`
	Orders  []models.Order `json:"orders"`
}

func TestPlaceOrderComputesTotalAndClearsCart(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1", models.RoleMember)
	a := seedProduct(t, db, "dumbbell", 10)
	b := seedProduct(t, db, "kettlebell", 25)
	seedCart(t, db, "u1", map[uint]int{a.ID: 2, b.ID: 1})
	r := orderRouter(db, "u1", models.RoleMember)

	w := doJSON(r, http.MethodPost, "/orders/place", gin.H{
		"items": []gin.H{
			{"product_id": a.ID, "quantity": 2},
			{"product_id": b.ID, "quantity": 1},
		},
		"shipping_address": validAddress(),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp placeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Order.Total.Equal(decimal.NewFromInt(45)), "total = %s", resp.Order.Total)
	assert.Equal(t, models.OrderStatusPending, resp.Order.Status)
	assert.NotEmpty(t, resp.Order.OrderRef)
	require.Len(t, resp.Order.Items, 2)

	// cart emptied in the same transaction
	var itemCount int64
	db.Model(&models.CartItem{}).Count(&itemCount)
	assert.EqualValues(t, 0, itemCount)
}

func TestPlaceOrderFreezesPrices(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1", models.RoleMember)
	p := seedProduct(t, db, "bench", 100)
	r := orderRouter(db, "u1", models.RoleMember)

	w := doJSON(r, http.MethodPost, "/orders/place", gin.H{
		"items":            []gin.H{{"product_id": p.ID, "quantity": 1}},
		"shipping_address": validAddress(),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// catalog price changes afterward must not alter the historical total
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", p.ID).
		Update("price", decimal.NewFromInt(150)).Error)

	lw := doJSON(r, http.MethodGet, "/orders/user", nil)
	require.Equal(t, http.StatusOK, lw.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(lw.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 1)
	assert.True(t, resp.Orders[0].Total.Equal(decimal.NewFromInt(100)))
	require.Len(t, resp.Orders[0].Items, 1)
	assert.True(t, resp.Orders[0].Items[0].UnitPrice.Equal(decimal.NewFromInt(100)))
}

func TestPlaceOrderAppearsExactlyOnceInUserList(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1", models.RoleMember)
	p := seedProduct(t, db, "mat", 15)
	r := orderRouter(db, "u1", models.RoleMember)

	w := doJSON(r, http.MethodPost, "/orders/place", gin.H{
		"items":            []gin.H{{"product_id": p.ID, "quantity": 1}},
		"shipping_address": validAddress(),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	lw := doJSON(r, http.MethodGet, "/orders/user", nil)
	var resp listResponse
	require.NoError(t, json.Unmarshal(lw.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, models.OrderStatusPending, resp.Orders[0].Status)
}

func TestPlaceOrderRejectsEmptyItems(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1", models.RoleMember)
	p := seedProduct(t, db, "rope", 8)
	seedCart(t, db, "u1", map[uint]int{p.ID: 1})
	r := orderRouter(db, "u1", models.RoleMember)

	w := doJSON(r, http.MethodPost, "/orders/place", gin.H{
		"items":            []gin.H{},
		"shipping_address": validAddress(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var orderCount, cartCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.CartItem{}).Count(&cartCount)
	assert.EqualValues(t, 0, orderCount)
	assert.EqualValues(t, 1, cartCount, "cart must be untouched")
}

func TestPlaceOrderRejectsNonPositiveQuantity(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1", models.RoleMember)
	p := seedProduct(t, db, "band", 5)
	r := orderRouter(db, "u1", models.RoleMember)

	w := doJSON(r, http.MethodPost, "/orders/place", gin.H{
		"items":            []gin.H{{"product_id": p.ID, "quantity": 0}},
		"shipping_address": validAddress(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.EqualValues(t, 0, orderCount)
}

func TestPlaceOrderRejectsUnknownProduct(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1", models.RoleMember)
	r := orderRouter(db, "u1", models.RoleMember)

	w := doJSON(r, http.MethodPost, "/orders/place", gin.H{
		"items":            []gin.H{{"product_id": 9999, "quantity": 1}},
		"shipping_address": validAddress(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "product not found")

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.EqualValues(t, 0, orderCount)
}

func TestPlaceOrderRejectsIncompleteAddress(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1", models.RoleMember)
	p := seedProduct(t, db, "bar", 30)
	r := orderRouter(db, "u1", models.RoleMember)

	addr := validAddress()
	delete(addr, "postal_code")

	w := doJSON(r, http.MethodPost, "/orders/place", gin.H{
		"items":            []gin.H{{"product_id": p.ID, "quantity": 1}},
		"shipping_address": addr,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.EqualValues(t, 0, orderCount)
}

func TestUpdateStatusForbiddenForMembers(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1", models.RoleMember)
	p := seedProduct(t, db, "plate", 12)
	r := orderRouter(db, "u1", models.RoleMember)

	w := doJSON(r, http.MethodPost, "/orders/place", gin.H{
		"items":            []gin.H{{"product_id": p.ID, "quantity": 1}},
		"shipping_address": validAddress(),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var resp placeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	uw := doJSON(r, http.MethodPatch, fmt.Sprintf("/orders/%d/status", resp.Order.ID), gin.H{"status": "Shipped"})
	assert.Equal(t, http.StatusForbidden, uw.Code)

	var order models.Order
	require.NoError(t, db.First(&order, resp.Order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, order.Status, "status must be unchanged")
}

func TestUpdateStatusAsAdmin(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1", models.RoleMember)
	seedUser(t, db, "a1", models.RoleAdmin)
	p := seedProduct(t, db, "gloves", 18)

	member := orderRouter(db, "u1", models.RoleMember)
	admin := orderRouter(db, "a1", models.RoleAdmin)

	w := doJSON(member, http.MethodPost, "/orders/place", gin.H{
		"items":            []gin.H{{"product_id": p.ID, "quantity": 1}},
		"shipping_address": validAddress(),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var resp placeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	uw := doJSON(admin, http.MethodPatch, fmt.Sprintf("/orders/%d/status", resp.Order.ID), gin.H{"status": "Shipped"})
	require.Equal(t, http.StatusOK, uw.Code, uw.Body.String())

	var order models.Order
	require.NoError(t, db.First(&order, resp.Order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, order.Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "a1", models.RoleAdmin)
	admin := orderRouter(db, "a1", models.RoleAdmin)

	w := doJSON(admin, http.MethodPatch, "/orders/1/status", gin.H{"status": "Teleported"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "a1", models.RoleAdmin)
	admin := orderRouter(db, "a1", models.RoleAdmin)

	w := doJSON(admin, http.MethodPatch, "/orders/777/status", gin.H{"status": "Shipped"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminListIncludesAllOrders(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1", models.RoleMember)
	seedUser(t, db, "u2", models.RoleMember)
	seedUser(t, db, "a1", models.RoleAdmin)
	p := seedProduct(t, db, "roller", 22)

	for _, uid := range []string{"u1", "u2"} {
		r := orderRouter(db, uid, models.RoleMember)
		w := doJSON(r, http.MethodPost, "/orders/place", gin.H{
			"items":            []gin.H{{"product_id": p.ID, "quantity": 1}},
			"shipping_address": validAddress(),
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	admin := orderRouter(db, "a1", models.RoleAdmin)
	w := doJSON(admin, http.MethodGet, "/orders/admin", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Orders, 2)
}

func TestDeleteOrderRemovesItems(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1", models.RoleMember)
	seedUser(t, db, "a1", models.RoleAdmin)
	p := seedProduct(t, db, "towel", 9)

	member := orderRouter(db, "u1", models.RoleMember)
	admin := orderRouter(db, "a1", models.RoleAdmin)

	w := doJSON(member, http.MethodPost, "/orders/place", gin.H{
		"items":            []gin.H{{"product_id": p.ID, "quantity": 1}},
		"shipping_address": validAddress(),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var resp placeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	dw := doJSON(admin, http.MethodDelete, fmt.Sprintf("/orders/%d", resp.Order.ID), nil)
	require.Equal(t, http.StatusOK, dw.Code)

	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.EqualValues(t, 0, orderCount)
	assert.EqualValues(t, 0, itemCount)
}

func TestDeleteUnknownOrder(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "a1", models.RoleAdmin)
	admin := orderRouter(db, "a1", models.RoleAdmin)

	w := doJSON(admin, http.MethodDelete, "/orders/404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMapOrderStatusIsCaseInsensitive(t *testing.T) {
	status, err := mapOrderStatus("shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, status)

	_, err = mapOrderStatus("returned")
	assert.Error(t, err)
}
