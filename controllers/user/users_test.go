package userControllers

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

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
		c.Set(middleware.CtxRole, string(models.RoleMember))
		c.Next()
	}
}

func seedUser(t *testing.T, db *gorm.DB, id string) models.User {
	t.Helper()
	u := models.User{
		ID:       id,
		Name:     "Test " + id,
		Email:    id + "@example.com",
		Password: "x",
		Role:     models.RoleMember,
		Status:   models.StatusActive,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateUserAddress(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/user", asUser("u1"), UpdateUser(db))

	w := doJSON(r, http.MethodPut, "/user", gin.H{
		"address": gin.H{
			"street":      "2 Oak Ave",
			"city":        "Portland",
			"state":       "OR",
			"postal_code": "97201",
			"country":     "USA",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", "u1").Error)
	assert.Equal(t, "2 Oak Ave", stored.Address.Street)
	assert.Equal(t, "97201", stored.Address.PostalCode)
}

func TestUpdateUserStatus(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/admin/users/:user_id/status", UpdateUserStatus(db))

	w := doJSON(r, http.MethodPatch, "/admin/users/u1/status", gin.H{"status": "Suspended"})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", "u1").Error)
	assert.Equal(t, models.StatusSuspended, stored.Status)
}

func TestUpdateUserStatusRejectsUnknownValue(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/admin/users/:user_id/status", UpdateUserStatus(db))

	w := doJSON(r, http.MethodPatch, "/admin/users/u1/status", gin.H{"status": "Banished"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMembership(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/admin/users/:user_id/membership", UpdateUserMembership(db))

	w := doJSON(r, http.MethodPatch, "/admin/users/u1/membership", gin.H{"membership": "Pro"})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", "u1").Error)
	assert.Equal(t, models.MembershipPro, stored.Membership)
}

func TestUpdateMembershipUnknownUser(t *testing.T) {
	db := setupDB(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/admin/users/:user_id/membership", UpdateUserMembership(db))

	w := doJSON(r, http.MethodPatch, "/admin/users/ghost/membership", gin.H{"membership": "Pro"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAllUsersOmitsSensitiveFields(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/users", GetAllUsers(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1@example.com")
	assert.NotContains(t, w.Body.String(), `"password"`)
}
