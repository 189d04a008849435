// internal/models/part.go
package models

import (
	"github.com/google/uuid"
)

// Part is a spare-parts purchase, either entered manually or derived
// from a bid's defect notes when the phone reaches inventory.
type Part struct {
	BaseModel
	Name          string     `json:"name" gorm:"size:255;not null"`
	Supplier      string     `json:"supplier,omitempty" gorm:"size:255"`
	PurchasePrice float64    `json:"purchase_price" gorm:"type:decimal(10,2);not null"`
	InvoiceNumber string     `json:"invoice_number,omitempty" gorm:"size:100"`
	Status        PartStatus `json:"status" gorm:"type:varchar(20);default:'Bestilt'"`
	// The phone/bid this part was ordered for
	OrderedFor uuid.UUID `json:"ordered_for" gorm:"type:uuid;not null;index"`
	// Who ordered this part
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`

	// Relationships
	Bid  Bid  `json:"bid,omitempty" gorm:"foreignKey:OrderedFor"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
