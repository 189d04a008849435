// internal/handlers/analytics.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/flipbase/flipbase-backend/internal/services"
	"github.com/flipbase/flipbase-backend/internal/utils"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// POST /api/analytics/track (public).
func (h *AnalyticsHandler) Track(c *gin.Context) {
	var req services.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	resp, err := h.analyticsService.Track(&req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"session_id": resp.SessionID,
		"visitor_id": resp.VisitorID,
	})
}

// POST /api/analytics/cart (public).
func (h *AnalyticsHandler) TrackCart(c *gin.Context) {
	var req services.CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if err := h.analyticsService.TrackCart(&req); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "ok"})
}
