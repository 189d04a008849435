// internal/tests/router_test.go
package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/flipbase/flipbase-backend/internal/config"
	"github.com/flipbase/flipbase-backend/internal/router"
)

// RouterTestSuite exercises routing and the auth gate without a
// database: every request here is rejected before a query would run.
type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *RouterTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey: "test-secret",
			TokenTTL:  5,
		},
	}
	suite.router = router.Initialize(nil, cfg)
}

func (suite *RouterTestSuite) request(method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) TestHealthCheck() {
	w := suite.request("GET", "/health", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "healthy")
}

func (suite *RouterTestSuite) TestProtectedRoutesRejectMissingToken() {
	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/bids"},
		{"GET", "/api/bids/inventory/all"},
		{"GET", "/api/parts"},
		{"GET", "/api/phone-parts"},
		{"GET", "/api/customers/search"},
		{"GET", "/api/users/me"},
		{"POST", "/api/users/change-password"},
		{"GET", "/api/users"},
	}

	for _, p := range paths {
		w := suite.request(p.method, p.path, nil)
		assert.Equal(suite.T(), http.StatusUnauthorized, w.Code, p.path)
		assert.Contains(suite.T(), w.Body.String(), "No token, authorization denied", p.path)
	}
}

func (suite *RouterTestSuite) TestProtectedRoutesRejectInvalidToken() {
	w := suite.request("GET", "/api/bids", map[string]string{
		"x-auth-token": "garbage",
	})
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Token is not valid")
}

func (suite *RouterTestSuite) TestUnknownRoute() {
	w := suite.request("GET", "/api/nope", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
