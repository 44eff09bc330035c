package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/pkg/utils"
)

func newAuthRouter(requiredRole string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{JWTAuthMiddleware()}
	if requiredRole != "" {
		handlers = append(handlers, RoleMiddleware(requiredRole))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString("user_id"),
			"role":   c.GetString("role"),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func doAuthRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddlewareValidToken(t *testing.T) {
	userId := uuid.New()
	token, err := utils.CreateToken(userId, "user")
	require.NoError(t, err)

	w := doAuthRequest(t, newAuthRouter(""), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userId.String())
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestJWTAuthMiddlewareMissingHeader(t *testing.T) {
	w := doAuthRequest(t, newAuthRouter(""), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareMalformedToken(t *testing.T) {
	w := doAuthRequest(t, newAuthRouter(""), "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleMiddlewareRejectsWrongRole(t *testing.T) {
	token, err := utils.CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	w := doAuthRequest(t, newAuthRouter("admin"), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleMiddlewareAllowsRequiredRole(t *testing.T) {
	token, err := utils.CreateToken(uuid.New(), "admin")
	require.NoError(t, err)

	w := doAuthRequest(t, newAuthRouter("admin"), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}
