// internal/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/flipbase/flipbase-backend/internal/utils"
)

// The database is only consulted after the token itself checks out, so
// the rejection paths can run against a nil connection.
func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "ok"})
	})
	return r
}

func TestAuthRequiredMissingToken(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	defer utils.SetJWTSecret("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	protectedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token, authorization denied")
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	defer utils.SetJWTSecret("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(TokenHeader, "not-a-valid-token")
	protectedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token is not valid")
}

func TestAuthRequiredUnconfiguredSecret(t *testing.T) {
	utils.SetJWTSecret("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(TokenHeader, "anything")
	protectedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequiredWithoutAuthContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/admin", AdminRequired(nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "ok"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization required")
}
