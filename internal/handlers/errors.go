// internal/handlers/errors.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/flipbase/flipbase-backend/internal/services"
	"github.com/flipbase/flipbase-backend/internal/utils"
)

// respondServiceError maps service-layer sentinel errors onto the HTTP
// error taxonomy. Anything unmapped is a server error; its detail is
// logged but never echoed to the caller.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBidNotFound),
		errors.Is(err, services.ErrPartNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCatalogNotFound),
		errors.Is(err, services.ErrSessionNotFound):
		utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrNotAuthorized):
		utils.UnauthorizedResponse(c, "Not authorized")
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrWrongPassword):
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, services.ErrDuplicateUser),
		errors.Is(err, services.ErrDuplicateCustomer),
		errors.Is(err, services.ErrDuplicatePart):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrSelfDelete),
		isValidationError(err):
		utils.BadRequestResponse(c, err.Error(), nil)
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("Request failed")
		utils.InternalErrorResponse(c, "")
	}
}

func isValidationError(err error) bool {
	return strings.HasPrefix(err.Error(), "validation failed")
}
