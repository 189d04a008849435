// internal/handlers/errors_test.go
package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/flipbase/flipbase-backend/internal/services"
)

func respond(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	respondServiceError(c, err)
	return w
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"bid not found", services.ErrBidNotFound, http.StatusNotFound},
		{"part not found", services.ErrPartNotFound, http.StatusNotFound},
		{"user not found", services.ErrUserNotFound, http.StatusNotFound},
		{"catalog part not found", services.ErrCatalogNotFound, http.StatusNotFound},
		{"session not found", services.ErrSessionNotFound, http.StatusNotFound},
		{"not authorized", services.ErrNotAuthorized, http.StatusUnauthorized},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusBadRequest},
		{"wrong current password", services.ErrWrongPassword, http.StatusBadRequest},
		{"duplicate user", services.ErrDuplicateUser, http.StatusBadRequest},
		{"duplicate customer", services.ErrDuplicateCustomer, http.StatusBadRequest},
		{"duplicate part", services.ErrDuplicatePart, http.StatusBadRequest},
		{"invalid status", services.ErrInvalidStatus, http.StatusBadRequest},
		{"self delete", services.ErrSelfDelete, http.StatusBadRequest},
		{"validation failure", errors.New("validation failed: name is required"), http.StatusBadRequest},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := respond(t, tt.err)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRespondServiceErrorHidesInternalDetail(t *testing.T) {
	w := respond(t, errors.New("dial tcp 10.0.0.3:5432: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
}

func TestRespondServiceErrorDanishMessages(t *testing.T) {
	w := respond(t, services.ErrInvalidCredentials)
	assert.Contains(t, w.Body.String(), "Ugyldige loginoplysninger")

	w = respond(t, services.ErrDuplicateCustomer)
	assert.Contains(t, w.Body.String(), "En kunde med denne email eller telefonnummer findes allerede.")

	w = respond(t, services.ErrWrongPassword)
	assert.Contains(t, w.Body.String(), "Nuværende adgangskode er forkert")
}
