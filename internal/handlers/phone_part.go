// internal/handlers/phone_part.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/flipbase/flipbase-backend/internal/services"
	"github.com/flipbase/flipbase-backend/internal/utils"
)

type PhonePartHandler struct {
	catalogService *services.CatalogService
}

func NewPhonePartHandler(catalogService *services.CatalogService) *PhonePartHandler {
	return &PhonePartHandler{
		catalogService: catalogService,
	}
}

// GET /api/phone-parts
func (h *PhonePartHandler) GetPhoneParts(c *gin.Context) {
	params := utils.GetListParams(c)

	parts, err := h.catalogService.Search(c.Query("search"), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, parts)
}

// POST /api/phone-parts (admin only). Write path for the catalog ingestion job.
func (h *PhonePartHandler) CreatePhonePart(c *gin.Context) {
	var req services.CreatePhonePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	part, err := h.catalogService.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, part)
}

// PUT /api/phone-parts/:id (admin only).
func (h *PhonePartHandler) UpdatePhonePart(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdatePhonePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	part, err := h.catalogService.Update(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, part)
}

// DELETE /api/phone-parts/:id (admin only).
func (h *PhonePartHandler) DeletePhonePart(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "Catalog part removed"})
}
