// internal/services/part_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flipbase/flipbase-backend/internal/models"
	"github.com/flipbase/flipbase-backend/internal/utils"
)

type PartService struct {
	db *gorm.DB
}

func NewPartService(db *gorm.DB) *PartService {
	return &PartService{db: db}
}

type CreatePartRow struct {
	Name          string    `json:"name" validate:"required"`
	Supplier      string    `json:"supplier,omitempty"`
	PurchasePrice *float64  `json:"purchase_price" validate:"required"`
	InvoiceNumber string    `json:"invoice_number,omitempty"`
	OrderedFor    uuid.UUID `json:"ordered_for" validate:"required"`
}

type CreatePartsRequest struct {
	Parts []CreatePartRow `json:"parts" validate:"required,min=1,dive"`
}

type UpdatePartRequest struct {
	Name          *string            `json:"name,omitempty"`
	Supplier      *string            `json:"supplier,omitempty"`
	PurchasePrice *float64           `json:"purchase_price,omitempty"`
	InvoiceNumber *string            `json:"invoice_number,omitempty"`
	Status        *models.PartStatus `json:"status,omitempty"`
}

// ListParts returns spare parts, optionally filtered by a
// case-insensitive substring match on the name, newest first.
func (s *PartService) ListParts(partName string, params utils.ListParams) ([]models.Part, error) {
	query := s.db.Preload("Bid").Preload("User")
	if partName != "" {
		query = query.Where("name ILIKE ?", "%"+partName+"%")
	}

	var parts []models.Part
	if err := utils.ApplyListParams(query, params).
		Order("created_at DESC").
		Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return parts, nil
}

// CreateParts bulk-inserts manually entered spare parts, stamping the
// acting user and forcing the ordered status.
func (s *PartService) CreateParts(actorID uuid.UUID, req *CreatePartsRequest) ([]models.Part, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	parts := make([]models.Part, 0, len(req.Parts))
	for _, row := range req.Parts {
		parts = append(parts, models.Part{
			Name:          row.Name,
			Supplier:      row.Supplier,
			PurchasePrice: *row.PurchasePrice,
			InvoiceNumber: row.InvoiceNumber,
			OrderedFor:    row.OrderedFor,
			UserID:        actorID,
			Status:        models.PartStatusOrdered,
		})
	}

	if err := s.db.Create(&parts).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicatePart
		}
		return nil, fmt.Errorf("failed to create parts: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		ids = append(ids, p.ID)
	}

	var populated []models.Part
	if err := s.db.Preload("Bid").Preload("User").
		Where("id IN ?", ids).
		Find(&populated).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return populated, nil
}

func (s *PartService) UpdatePart(id uuid.UUID, req *UpdatePartRequest) (*models.Part, error) {
	if req.Status != nil && !models.ValidPartStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}

	var part models.Part
	if err := s.db.First(&part, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Supplier != nil {
		updates["supplier"] = *req.Supplier
	}
	if req.PurchasePrice != nil {
		updates["purchase_price"] = *req.PurchasePrice
	}
	if req.InvoiceNumber != nil {
		updates["invoice_number"] = *req.InvoiceNumber
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(&part).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrDuplicatePart
			}
			return nil, fmt.Errorf("failed to update part: %w", err)
		}
	}

	var populated models.Part
	if err := s.db.Preload("Bid").Preload("User").First(&populated, id).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &populated, nil
}

func (s *PartService) DeletePart(id uuid.UUID) error {
	var part models.Part
	if err := s.db.First(&part, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPartNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&part).Error; err != nil {
		return fmt.Errorf("failed to delete part: %w", err)
	}
	return nil
}
