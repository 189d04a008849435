// internal/services/bid_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/flipbase/flipbase-backend/internal/database"
	"github.com/flipbase/flipbase-backend/internal/flaws"
	"github.com/flipbase/flipbase-backend/internal/models"
	"github.com/flipbase/flipbase-backend/internal/utils"
)

type BidService struct {
	db *gorm.DB
}

func NewBidService(db *gorm.DB) *BidService {
	return &BidService{db: db}
}

type CreateBidRequest struct {
	Name                string           `json:"name" validate:"required"`
	Image               string           `json:"image,omitempty"`
	BidAmount           *float64         `json:"bid_amount" validate:"required"`
	Currency            string           `json:"currency,omitempty"`
	Status              models.BidStatus `json:"status,omitempty"`
	Link                string           `json:"link" validate:"required"`
	FacebookDescription string           `json:"facebook_description,omitempty"`
	FlawsAndDefects     string           `json:"flaws_and_defects,omitempty"`
	StorageGB           *int             `json:"storage_gb,omitempty"`
	BatteryHealth       *int             `json:"battery_health,omitempty"`
	RepairCost          *float64         `json:"repair_cost,omitempty"`
}

// UpdateBidRequest is a merge patch: only fields present in the JSON
// body are applied, absent fields never clobber stored values.
type UpdateBidRequest struct {
	Name                *string           `json:"name,omitempty"`
	Image               *string           `json:"image,omitempty"`
	BidAmount           *float64          `json:"bid_amount,omitempty"`
	Currency            *string           `json:"currency,omitempty"`
	Status              *models.BidStatus `json:"status,omitempty"`
	Link                *string           `json:"link,omitempty"`
	FacebookDescription *string           `json:"facebook_description,omitempty"`
	FlawsAndDefects     *string           `json:"flaws_and_defects,omitempty"`
	StorageGB           *int              `json:"storage_gb,omitempty"`
	BatteryHealth       *int              `json:"battery_health,omitempty"`
	RepairCost          *float64          `json:"repair_cost,omitempty"`
	SoldPrice           *float64          `json:"sold_price,omitempty"`
	ForSale             *bool             `json:"for_sale,omitempty"`
	Price               *float64          `json:"price,omitempty"`
}

type UpdateBuyerRequest struct {
	BuyerName    string     `json:"buyer_name" validate:"required"`
	BuyerEmail   string     `json:"buyer_email,omitempty"`
	BuyerPhone   string     `json:"buyer_phone,omitempty"`
	BuyerAddress string     `json:"buyer_address,omitempty"`
	SoldDate     *time.Time `json:"sold_date,omitempty"`
}

// ListActive returns the company's bids still in play, everything not
// yet received into inventory.
func (s *BidService) ListActive(company string) ([]models.Bid, error) {
	var bids []models.Bid
	if err := s.db.Preload("User").
		Where("company = ? AND status != ?", company, models.BidStatusInStock).
		Order("created_at DESC").
		Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return bids, nil
}

// ListInventoryForSale backs the public storefront: phones in stock
// and flagged for sale, across all companies. Not tenant scoped.
func (s *BidService) ListInventoryForSale() ([]models.Bid, error) {
	var bids []models.Bid
	if err := s.db.Preload("User").
		Where("status = ? AND for_sale = ?", models.BidStatusInStock, true).
		Order("created_at DESC").
		Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return bids, nil
}

// ListInventory returns the company's full inventory, for-sale or not.
func (s *BidService) ListInventory(company string) ([]models.Bid, error) {
	var bids []models.Bid
	if err := s.db.Preload("User").
		Where("company = ? AND status = ?", company, models.BidStatusInStock).
		Order("created_at DESC").
		Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return bids, nil
}

// ListSold returns the company's sold bids, optionally filtered by a
// free-text search over the product name and the linked customer.
func (s *BidService) ListSold(company, search string) ([]models.Bid, error) {
	query := s.db.Preload("User").Preload("Customer").
		Where("company = ? AND status = ?", company, models.BidStatusSold)

	if search != "" {
		pattern := "%" + search + "%"

		var customerIDs []uuid.UUID
		if err := s.db.Model(&models.Customer{}).
			Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR address ILIKE ?",
				pattern, pattern, pattern, pattern).
			Pluck("id", &customerIDs).Error; err != nil {
			return nil, fmt.Errorf("database error: %w", err)
		}

		if len(customerIDs) > 0 {
			query = query.Where("name ILIKE ? OR customer_id IN ?", pattern, customerIDs)
		} else {
			query = query.Where("name ILIKE ?", pattern)
		}
	}

	var bids []models.Bid
	if err := query.Order("sold_date DESC").Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return bids, nil
}

func (s *BidService) GetBid(id uuid.UUID, company string) (*models.Bid, error) {
	var bid models.Bid
	if err := s.db.Preload("User").Preload("Customer").First(&bid, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if bid.Company != company {
		return nil, ErrNotAuthorized
	}
	return &bid, nil
}

func (s *BidService) CreateBid(userID uuid.UUID, company string, req *CreateBidRequest) (*models.Bid, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.BidStatusBidding
	}
	if !models.ValidBidStatus(status) {
		return nil, ErrInvalidStatus
	}

	currency := req.Currency
	if currency == "" {
		currency = "DKK"
	}

	bid := &models.Bid{
		Name:                req.Name,
		Image:               req.Image,
		BidAmount:           *req.BidAmount,
		Currency:            currency,
		Status:              status,
		Link:                req.Link,
		FacebookDescription: req.FacebookDescription,
		FlawsAndDefects:     req.FlawsAndDefects,
		StorageGB:           req.StorageGB,
		BatteryHealth:       req.BatteryHealth,
		UserID:              userID,
		Company:             company,
	}
	if req.RepairCost != nil {
		bid.RepairCost = *req.RepairCost
	}

	if err := s.db.Create(bid).Error; err != nil {
		return nil, fmt.Errorf("failed to create bid: %w", err)
	}
	return bid, nil
}

// UpdateBid applies a merge patch to a bid and, when the patch moves
// the status into "På lager", derives spare parts from the bid's
// flaws-and-defects notes. The bid update commits before derivation
// starts; a derivation failure surfaces as an error without rolling
// the status change back.
func (s *BidService) UpdateBid(id uuid.UUID, company string, actorID uuid.UUID, req *UpdateBidRequest) (*models.Bid, error) {
	var bid models.Bid
	if err := s.db.First(&bid, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Tenant check before any mutation.
	if bid.Company != company {
		return nil, ErrNotAuthorized
	}

	if req.Status != nil && !models.ValidBidStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}

	oldStatus := bid.Status

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.BidAmount != nil {
		updates["bid_amount"] = *req.BidAmount
	}
	if req.Currency != nil {
		updates["currency"] = *req.Currency
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}
	if req.FacebookDescription != nil {
		updates["facebook_description"] = *req.FacebookDescription
	}
	if req.FlawsAndDefects != nil {
		updates["flaws_and_defects"] = *req.FlawsAndDefects
	}
	if req.StorageGB != nil {
		updates["storage_gb"] = *req.StorageGB
	}
	if req.BatteryHealth != nil {
		updates["battery_health"] = *req.BatteryHealth
	}
	if req.RepairCost != nil {
		updates["repair_cost"] = *req.RepairCost
	}
	if req.SoldPrice != nil {
		updates["sold_price"] = *req.SoldPrice
	}
	if req.ForSale != nil {
		updates["for_sale"] = *req.ForSale
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}

	if len(updates) > 0 {
		if err := s.db.Model(&bid).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update bid: %w", err)
		}
	}

	// Reload so the derivation below sees the post-patch state.
	if err := s.db.First(&bid, id).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	if models.EntersInventory(oldStatus, bid.Status) {
		if err := s.deriveParts(&bid, actorID); err != nil {
			logrus.WithError(err).WithField("bid_id", bid.ID).
				Error("Failed to derive parts from flaws")
			return nil, fmt.Errorf("failed to derive parts: %w", err)
		}
	}

	return &bid, nil
}

// deriveParts creates spare-part orders from the bid's defect notes.
// Names already present for the bid are skipped, and the unique index
// on (ordered_for, lower(name)) absorbs the race between two
// concurrent transitions passing that pre-check together.
func (s *BidService) deriveParts(bid *models.Bid, actorID uuid.UUID) error {
	var existing []models.Part
	if err := s.db.Where("ordered_for = ?", bid.ID).Find(&existing).Error; err != nil {
		return fmt.Errorf("failed to load existing parts: %w", err)
	}

	existingNames := make([]string, 0, len(existing))
	for _, p := range existing {
		existingNames = append(existingNames, p.Name)
	}

	names := flaws.NewPartNames(bid.FlawsAndDefects, existingNames)
	if len(names) == 0 {
		return nil
	}

	prices, err := s.catalogPrices(names)
	if err != nil {
		return err
	}

	parts := make([]models.Part, 0, len(names))
	for _, name := range names {
		parts = append(parts, models.Part{
			Name:          name,
			OrderedFor:    bid.ID,
			UserID:        actorID,
			PurchasePrice: prices[strings.ToLower(name)],
			Status:        models.PartStatusOrdered,
		})
	}

	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&parts).Error; err != nil {
		return fmt.Errorf("failed to create parts: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"bid_id": bid.ID,
		"count":  len(parts),
	}).Info("Derived spare parts from flaws")
	return nil
}

// catalogPrices resolves part names against the price catalog by exact
// case-insensitive match. Unmatched names simply stay absent from the
// map, which reads back as a zero price.
func (s *BidService) catalogPrices(names []string) (map[string]float64, error) {
	lowered := make([]string, 0, len(names))
	for _, name := range names {
		lowered = append(lowered, strings.ToLower(name))
	}

	var catalog []models.PhonePart
	if err := s.db.Where("LOWER(name) IN ?", lowered).Find(&catalog).Error; err != nil {
		return nil, fmt.Errorf("catalog lookup failed: %w", err)
	}

	prices := make(map[string]float64, len(catalog))
	for _, part := range catalog {
		prices[strings.ToLower(part.Name)] = part.Price
	}
	return prices, nil
}

// UpdateBuyer records buyer details against a sold bid: it finds or
// creates the customer (matched on email or phone), links it to the
// bid, and stamps the sold date when provided.
func (s *BidService) UpdateBuyer(id uuid.UUID, company string, req *UpdateBuyerRequest) (*models.Bid, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var bid models.Bid
	if err := s.db.First(&bid, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if bid.Company != company {
		return nil, ErrNotAuthorized
	}

	// Customer upsert and bid link commit together: a failed link must
	// not leave a customer claiming a sale the bid never recorded.
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var existing *models.Customer
		if cond, args, ok := buyerMatch(req); ok {
			var found models.Customer
			if err := tx.Where(cond, args...).First(&found).Error; err == nil {
				existing = &found
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("database error: %w", err)
			}
		}

		customer := reconcileBuyer(existing, req, bid.ID.String())
		if err := tx.Save(customer).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateCustomer
			}
			return fmt.Errorf("failed to save customer: %w", err)
		}

		bid.CustomerID = &customer.ID
		if req.SoldDate != nil {
			bid.SoldDate = req.SoldDate
		}
		if err := tx.Save(&bid).Error; err != nil {
			return fmt.Errorf("failed to update bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var populated models.Bid
	if err := s.db.Preload("Customer").First(&populated, bid.ID).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &populated, nil
}

// SellBid marks a bid as sold at the given price and stamps the sale
// date.
func (s *BidService) SellBid(id uuid.UUID, company string, soldPrice float64) (*models.Bid, error) {
	var bid models.Bid
	if err := s.db.First(&bid, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if bid.Company != company {
		return nil, ErrNotAuthorized
	}

	now := time.Now()
	bid.Status = models.BidStatusSold
	bid.SoldPrice = &soldPrice
	bid.SoldDate = &now

	if err := s.db.Save(&bid).Error; err != nil {
		return nil, fmt.Errorf("failed to update bid: %w", err)
	}
	return &bid, nil
}

// AveragePrice returns the company's average sold price for bids whose
// name contains modelName (case-insensitive), or nil when there is no
// sales data.
func (s *BidService) AveragePrice(company, modelName string) (*float64, error) {
	var avg *float64
	err := s.db.Model(&models.Bid{}).
		Where("company = ? AND name ILIKE ? AND status = ? AND sold_price IS NOT NULL AND sold_price > 0",
			company, "%"+modelName+"%", models.BidStatusSold).
		Select("AVG(sold_price)").
		Scan(&avg).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return avg, nil
}

func (s *BidService) DeleteBid(id uuid.UUID) error {
	var bid models.Bid
	if err := s.db.First(&bid, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBidNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&bid).Error; err != nil {
		return fmt.Errorf("failed to delete bid: %w", err)
	}
	return nil
}
