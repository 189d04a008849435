// internal/handlers/bid.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/flipbase/flipbase-backend/internal/services"
	"github.com/flipbase/flipbase-backend/internal/utils"
)

type BidHandler struct {
	bidService *services.BidService
}

func NewBidHandler(bidService *services.BidService) *BidHandler {
	return &BidHandler{
		bidService: bidService,
	}
}

func actingUser(c *gin.Context) (uuid.UUID, string, bool) {
	userIDStr, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, "", false
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, "", false
	}
	company, ok := utils.GetCompanyFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, "", false
	}
	return userID, company, true
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// GET /api/bids
func (h *BidHandler) GetBids(c *gin.Context) {
	_, company, ok := actingUser(c)
	if !ok {
		return
	}

	bids, err := h.bidService.ListActive(company)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, bids)
}

// GET /api/bids/inventory (public). Storefront listing.
func (h *BidHandler) GetInventory(c *gin.Context) {
	bids, err := h.bidService.ListInventoryForSale()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, bids)
}

// GET /api/bids/inventory/all
func (h *BidHandler) GetAllInventory(c *gin.Context) {
	_, company, ok := actingUser(c)
	if !ok {
		return
	}

	bids, err := h.bidService.ListInventory(company)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, bids)
}

// GET /api/bids/sold
func (h *BidHandler) GetSold(c *gin.Context) {
	_, company, ok := actingUser(c)
	if !ok {
		return
	}

	bids, err := h.bidService.ListSold(company, c.Query("search"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, bids)
}

// GET /api/bids/average-price/:modelName
func (h *BidHandler) GetAveragePrice(c *gin.Context) {
	_, company, ok := actingUser(c)
	if !ok {
		return
	}

	avg, err := h.bidService.AveragePrice(company, c.Param("modelName"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"average_price": avg})
}

// GET /api/bids/:id
func (h *BidHandler) GetBid(c *gin.Context) {
	_, company, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	bid, err := h.bidService.GetBid(id, company)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, bid)
}

// POST /api/bids
func (h *BidHandler) CreateBid(c *gin.Context) {
	userID, company, ok := actingUser(c)
	if !ok {
		return
	}

	var req services.CreateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	bid, err := h.bidService.CreateBid(userID, company, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, bid)
}

// PUT /api/bids/:id applies a merge patch. A transition into "På lager"
// derives spare parts from the flaws-and-defects notes.
func (h *BidHandler) UpdateBid(c *gin.Context) {
	userID, company, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	bid, err := h.bidService.UpdateBid(id, company, userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, bid)
}

// PUT /api/bids/:id/buyer
func (h *BidHandler) UpdateBuyer(c *gin.Context) {
	_, company, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateBuyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if req.BuyerName == "" {
		utils.BadRequestResponse(c, "Buyer name is required", nil)
		return
	}

	bid, err := h.bidService.UpdateBuyer(id, company, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, bid)
}

// PUT /api/bids/:id/sell
func (h *BidHandler) SellBid(c *gin.Context) {
	_, company, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		SoldPrice *float64 `json:"sold_price" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}
	if req.SoldPrice == nil {
		utils.BadRequestResponse(c, "Sold price is required and must be a number", nil)
		return
	}

	bid, err := h.bidService.SellBid(id, company, *req.SoldPrice)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, bid)
}

// DELETE /api/bids/:id (admin only).
func (h *BidHandler) DeleteBid(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.bidService.DeleteBid(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "Bid removed"})
}
