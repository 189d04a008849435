// internal/models/bid.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Bid struct {
	BaseModel
	Name                string     `json:"name" gorm:"size:255;not null"`
	Image               string     `json:"image,omitempty" gorm:"size:1024"`
	BidAmount           float64    `json:"bid_amount" gorm:"type:decimal(10,2);not null"`
	Currency            string     `json:"currency" gorm:"size:10;default:'DKK'"`
	Status              BidStatus  `json:"status" gorm:"type:varchar(40);default:'Byder';index"`
	FacebookDescription string     `json:"facebook_description" gorm:"type:text"`
	FlawsAndDefects     string     `json:"flaws_and_defects" gorm:"type:text"`
	StorageGB           *int       `json:"storage_gb,omitempty"`
	BatteryHealth       *int       `json:"battery_health,omitempty"`
	RepairCost          float64    `json:"repair_cost" gorm:"type:decimal(10,2);default:0"`
	Price               float64    `json:"price" gorm:"type:decimal(10,2);default:0"`
	SoldPrice           *float64   `json:"sold_price" gorm:"type:decimal(10,2)"`
	ForSale             bool       `json:"for_sale" gorm:"default:false"`
	SoldDate            *time.Time `json:"sold_date,omitempty"`
	Link                string     `json:"link" gorm:"size:1024;not null"`
	CustomerID          *uuid.UUID `json:"customer_id,omitempty" gorm:"type:uuid;index"`
	UserID              uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Company             string     `json:"company" gorm:"size:255;not null;index"`

	// Relationships
	User     User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Parts    []Part    `json:"parts,omitempty" gorm:"foreignKey:OrderedFor"`
}

// EntersInventory is the single state-machine edge with a side effect:
// it fires exactly when a bid moves into "På lager" from any other
// status, which is what triggers spare-part derivation from the
// flaws-and-defects notes. Re-saving a bid that is already in stock
// does not fire.
func EntersInventory(old, updated BidStatus) bool {
	return updated == BidStatusInStock && old != BidStatusInStock
}
