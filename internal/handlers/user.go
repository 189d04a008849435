// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/flipbase/flipbase-backend/internal/services"
	"github.com/flipbase/flipbase-backend/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GET /api/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, user)
}

// PUT /api/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, user)
}

// POST /api/users/change-password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}

	var req services.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.userService.ChangePassword(userID, &req); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "Adgangskode opdateret succesfuldt"})
}

// GET /api/users (admin only).
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, users)
}

// POST /api/users (admin only).
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, user)
}

// PUT /api/users/:id (admin only).
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	user, err := h.userService.UpdateUser(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, user)
}

// DELETE /api/users/:id (admin only).
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actorID, _, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(id, actorID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "Bruger slettet succesfuldt"})
}
