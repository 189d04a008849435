// internal/models/customer.go
package models

import (
	"github.com/lib/pq"
)

// Customer is a storefront buyer, created or updated when a bid is
// marked sold. Email and phone are nullable but unique when present,
// which is what the buyer reconciliation matches on.
type Customer struct {
	BaseModel
	Name    string  `json:"name" gorm:"size:255;not null"`
	Email   *string `json:"email,omitempty" gorm:"uniqueIndex;size:255"`
	Phone   *string `json:"phone,omitempty" gorm:"uniqueIndex;size:50"`
	Address string  `json:"address,omitempty" gorm:"size:512"`
	// Backreference to every bid this customer has bought.
	BidIDs pq.StringArray `json:"bid_ids" gorm:"type:text[]"`

	// Relationships
	Bids []Bid `json:"bids,omitempty" gorm:"foreignKey:CustomerID"`
}

// HasBid reports whether id is already in the customer's bid list.
func (c *Customer) HasBid(id string) bool {
	for _, existing := range c.BidIDs {
		if existing == id {
			return true
		}
	}
	return false
}
