package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facility-hub/internal/config"
	"facility-hub/pkg/utils"
)

func authTestRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		id, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id":      id,
			"is_superuser": IsSuperuser(c),
		})
	})
	return r
}

func testJWTConfig() *config.Config {
	return &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpiryHours: 1}}
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	r := authTestRouter(testJWTConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
}

func TestAuthMiddlewareBearerToken(t *testing.T) {
	cfg := testJWTConfig()
	r := authTestRouter(cfg)

	pair, err := utils.GenerateTokenPair(7, "ann@example.com", true, cfg.JWT.Secret, 1, 24)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), `"is_superuser":true`)
}

func TestAuthMiddlewareCookieFallback(t *testing.T) {
	cfg := testJWTConfig()
	r := authTestRouter(cfg)

	pair, err := utils.GenerateTokenPair(3, "bob@example.com", false, cfg.JWT.Secret, 1, 24)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: pair.AccessToken})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":3`)
	assert.Contains(t, w.Body.String(), `"is_superuser":false`)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	r := authTestRouter(testJWTConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareWrongScheme(t *testing.T) {
	r := authTestRouter(testJWTConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
