package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"maxcleaners/config"
	"maxcleaners/models"
	"maxcleaners/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  "1h",
		AdminPhone: "5550000000",
	}
	utils.Blacklist = utils.NewMemoryTokenStore()

	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		identity, _ := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"phone": identity.PhoneNumber})
	})
	router.GET("/admin", AuthMiddleware(), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	router := setupAuthTest(t)

	t.Run("missing header", func(t *testing.T) {
		w := doRequest(router, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := doRequest(router, "/protected", "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := doRequest(router, "/protected", "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token resolves identity", func(t *testing.T) {
		token, err := utils.GenerateToken("5551112222")
		require.NoError(t, err)

		w := doRequest(router, "/protected", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "5551112222")
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		token, err := utils.GenerateToken("5551112222")
		require.NoError(t, err)
		require.NoError(t, utils.RevokeToken(token))

		w := doRequest(router, "/protected", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminMiddleware(t *testing.T) {
	router := setupAuthTest(t)

	t.Run("non-admin identity is forbidden", func(t *testing.T) {
		token, err := utils.GenerateToken("5551112222")
		require.NoError(t, err)

		w := doRequest(router, "/admin", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin identity passes", func(t *testing.T) {
		token, err := utils.GenerateToken("5550000000")
		require.NoError(t, err)

		w := doRequest(router, "/admin", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestIdentityHasRole(t *testing.T) {
	config.AppConfig = &config.Config{AdminPhone: "5550000000"}

	admin := models.Identity{PhoneNumber: "5550000000"}
	customer := models.Identity{PhoneNumber: "5551112222"}

	assert.True(t, admin.HasRole(models.RoleAdmin))
	assert.False(t, customer.HasRole(models.RoleAdmin))
	assert.True(t, customer.HasRole(models.RoleCustomer))
	assert.False(t, models.Identity{}.HasRole(models.RoleCustomer))
}
