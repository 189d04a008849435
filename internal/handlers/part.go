// internal/handlers/part.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/flipbase/flipbase-backend/internal/services"
	"github.com/flipbase/flipbase-backend/internal/utils"
)

type PartHandler struct {
	partService *services.PartService
}

func NewPartHandler(partService *services.PartService) *PartHandler {
	return &PartHandler{
		partService: partService,
	}
}

// GET /api/parts
func (h *PartHandler) GetParts(c *gin.Context) {
	params := utils.GetListParams(c)

	parts, err := h.partService.ListParts(c.Query("partName"), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, parts)
}

// POST /api/parts (bulk create).
func (h *PartHandler) CreateParts(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}

	var req services.CreatePartsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	parts, err := h.partService.CreateParts(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, parts)
}

// PUT /api/parts/:id (admin only).
func (h *PartHandler) UpdatePart(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	part, err := h.partService.UpdatePart(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, part)
}

// DELETE /api/parts/:id (admin only).
func (h *PartHandler) DeletePart(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.partService.DeletePart(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "Reservedel slettet"})
}
