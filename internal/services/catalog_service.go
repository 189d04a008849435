// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flipbase/flipbase-backend/internal/models"
	"github.com/flipbase/flipbase-backend/internal/utils"
)

// CatalogService reads and maintains the supplier price catalog. The
// workflow only reads it; writes come from the offline ingestion job
// through the admin endpoints.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

type CreatePhonePartRequest struct {
	Name     string   `json:"name" validate:"required"`
	Price    *float64 `json:"price" validate:"required"`
	Model    string   `json:"model" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Variant  string   `json:"variant,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	InStock  *bool    `json:"in_stock,omitempty"`
}

type UpdatePhonePartRequest struct {
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Model    *string  `json:"model,omitempty"`
	Category *string  `json:"category,omitempty"`
	Variant  *string  `json:"variant,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
	InStock  *bool    `json:"in_stock,omitempty"`
}

// Search lists catalog parts, optionally filtered by a
// case-insensitive substring over name, variant and category.
func (s *CatalogService) Search(search string, params utils.ListParams) ([]models.PhonePart, error) {
	query := s.db.Model(&models.PhonePart{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR variant ILIKE ? OR category ILIKE ?",
			pattern, pattern, pattern)
	}

	var parts []models.PhonePart
	if err := utils.ApplyListParams(query, params).
		Order("name ASC, price ASC").
		Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return parts, nil
}

func (s *CatalogService) Create(req *CreatePhonePartRequest) (*models.PhonePart, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	part := &models.PhonePart{
		Name:     req.Name,
		Price:    *req.Price,
		Model:    req.Model,
		Category: req.Category,
		Variant:  req.Variant,
		Notes:    req.Notes,
		InStock:  true,
	}
	if part.Variant == "" {
		part.Variant = "Standard"
	}
	if req.InStock != nil {
		part.InStock = *req.InStock
	}

	if err := s.db.Create(part).Error; err != nil {
		return nil, fmt.Errorf("failed to create catalog part: %w", err)
	}
	return part, nil
}

func (s *CatalogService) Update(id uuid.UUID, req *UpdatePhonePartRequest) (*models.PhonePart, error) {
	var part models.PhonePart
	if err := s.db.First(&part, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Variant != nil {
		updates["variant"] = *req.Variant
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.InStock != nil {
		updates["in_stock"] = *req.InStock
	}

	if len(updates) > 0 {
		if err := s.db.Model(&part).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update catalog part: %w", err)
		}
	}

	if err := s.db.First(&part, id).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &part, nil
}

func (s *CatalogService) Delete(id uuid.UUID) error {
	var part models.PhonePart
	if err := s.db.First(&part, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCatalogNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&part).Error; err != nil {
		return fmt.Errorf("failed to delete catalog part: %w", err)
	}
	return nil
}
