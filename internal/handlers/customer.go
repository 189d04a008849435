// internal/handlers/customer.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/flipbase/flipbase-backend/internal/services"
	"github.com/flipbase/flipbase-backend/internal/utils"
)

type CustomerHandler struct {
	customerService *services.CustomerService
}

func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// GET /api/customers/search
func (h *CustomerHandler) SearchCustomers(c *gin.Context) {
	customers, err := h.customerService.Search(c.Query("q"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, customers)
}
