package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/menuboard/menuboard-api/config"
	"github.com/menuboard/menuboard-api/middleware"
	"github.com/menuboard/menuboard-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.App = config.Config{
		DBPath:    filepath.Join(t.TempDir(), "test.db"),
		JWTSecret: []byte("test-secret"),
		TokenTTL:  time.Hour,
	}
	config.InitDB()

	r := gin.New()
	r.GET("/protected", middleware.AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": middleware.GetUserID(c)})
	})
	r.GET("/admin-only", middleware.AuthRequired(), middleware.PlatformAdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	r := setupAuthTest(t)

	user := models.User{Username: "mario", Email: "mario@example.com", PasswordHash: "x", Role: models.RoleStandard}
	require.NoError(t, config.DB.Create(&user).Error)
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/protected", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/protected", "not-a-token").Code)
	assert.Equal(t, http.StatusOK, get(r, "/protected", token).Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	r := setupAuthTest(t)

	user := models.User{Username: "mario", Email: "mario@example.com", PasswordHash: "x", Role: models.RoleStandard}
	require.NoError(t, config.DB.Create(&user).Error)

	config.App.TokenTTL = -time.Minute
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	config.App.TokenTTL = time.Hour

	assert.Equal(t, http.StatusUnauthorized, get(r, "/protected", token).Code)
}

func TestTokenSignatureChecked(t *testing.T) {
	r := setupAuthTest(t)

	user := models.User{Username: "mario", Email: "mario@example.com", PasswordHash: "x", Role: models.RoleStandard}
	require.NoError(t, config.DB.Create(&user).Error)
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)

	config.App.JWTSecret = []byte("rotated-secret")
	assert.Equal(t, http.StatusUnauthorized, get(r, "/protected", token).Code)
}

func TestPlatformAdminRequired(t *testing.T) {
	r := setupAuthTest(t)

	standard := models.User{Username: "mario", Email: "mario@example.com", PasswordHash: "x", Role: models.RoleStandard}
	require.NoError(t, config.DB.Create(&standard).Error)
	admin := models.User{Username: "root", Email: "root@example.com", PasswordHash: "x", Role: models.RolePlatformAdmin}
	require.NoError(t, config.DB.Create(&admin).Error)

	standardToken, err := middleware.GenerateToken(&standard)
	require.NoError(t, err)
	adminToken, err := middleware.GenerateToken(&admin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, get(r, "/admin-only", standardToken).Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin-only", adminToken).Code)

	// Deleting the admin row revokes access even with a valid token
	require.NoError(t, config.DB.Delete(&admin).Error)
	assert.Equal(t, http.StatusForbidden, get(r, "/admin-only", adminToken).Code)
}
