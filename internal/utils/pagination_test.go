// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func listParamsFor(query string) ListParams {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/parts"+query, nil)
	return GetListParams(c)
}

func TestGetListParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected ListParams
	}{
		{"defaults", "", ListParams{Page: 1, Limit: 100}},
		{"explicit values", "?page=3&limit=50", ListParams{Page: 3, Limit: 50}},
		{"zero page clamps to one", "?page=0", ListParams{Page: 1, Limit: 100}},
		{"negative page clamps to one", "?page=-2", ListParams{Page: 1, Limit: 100}},
		{"oversized limit falls back", "?limit=5000", ListParams{Page: 1, Limit: 100}},
		{"zero limit falls back", "?limit=0", ListParams{Page: 1, Limit: 100}},
		{"non-numeric input falls back", "?page=abc&limit=xyz", ListParams{Page: 1, Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, listParamsFor(tt.query))
		})
	}
}
