// internal/services/customer_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/flipbase/flipbase-backend/internal/models"
)

type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// Search matches customers by a case-insensitive substring over name,
// email and phone, capped at 10 rows. An empty query returns nothing.
func (s *CustomerService) Search(q string) ([]models.Customer, error) {
	if q == "" {
		return []models.Customer{}, nil
	}

	pattern := "%" + q + "%"
	var customers []models.Customer
	if err := s.db.
		Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern).
		Limit(10).
		Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return customers, nil
}
