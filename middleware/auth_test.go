package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Meera-417/VastraKart/config"
	"github.com/Meera-417/VastraKart/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateDB(db))

	previous := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = previous })
	return db
}

func newGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin/ping", AdminAuthMiddleware(), func(c *gin.Context) {
		admin := c.MustGet("admin").(models.Admin)
		c.JSON(http.StatusOK, gin.H{"email": admin.Email})
	})
	return router
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func getWithToken(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdminAuthMiddleware(t *testing.T) {
	db := setupAuthDB(t)
	t.Setenv("JWT_SECRET", "unit-test-secret")
	router := newGuardedRouter()

	admin := models.Admin{Email: "admin@vastrakart.in", Password: "hash", IsActive: true}
	require.NoError(t, db.Create(&admin).Error)
	inactive := models.Admin{Email: "gone@vastrakart.in", Password: "hash", IsActive: false}
	require.NoError(t, db.Create(&inactive).Error)

	claimsFor := func(id uint) jwt.MapClaims {
		return jwt.MapClaims{"admin_id": id, "exp": time.Now().Add(time.Hour).Unix()}
	}

	t.Run("missing header", func(t *testing.T) {
		w := getWithToken(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := getWithToken(router, "not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		w := getWithToken(router, signToken(t, "other-secret", claimsFor(admin.ID)))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.MapClaims{"admin_id": admin.ID, "exp": time.Now().Add(-time.Hour).Unix()}
		w := getWithToken(router, signToken(t, "unit-test-secret", expired))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing admin_id claim", func(t *testing.T) {
		w := getWithToken(router, signToken(t, "unit-test-secret", jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown admin", func(t *testing.T) {
		w := getWithToken(router, signToken(t, "unit-test-secret", claimsFor(999)))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("inactive admin", func(t *testing.T) {
		w := getWithToken(router, signToken(t, "unit-test-secret", claimsFor(inactive.ID)))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("valid token passes and sets context", func(t *testing.T) {
		w := getWithToken(router, signToken(t, "unit-test-secret", claimsFor(admin.ID)))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin@vastrakart.in")
	})
}
