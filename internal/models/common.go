// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// JSONBArray is a JSONB column holding an ordered list of objects, used
// for the append-only sub-records on analytics sessions.
type JSONBArray []map[string]interface{}

func (a JSONBArray) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]map[string]interface{}{})
	}
	return json.Marshal(a)
}

func (a *JSONBArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Enums
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "Aktiv"
	UserStatusInactive UserStatus = "Inaktiv"
)

// Bid statuses are the workflow stages shown on the dashboard. The
// values are the Danish labels staff see; they are stored verbatim.
type BidStatus string

const (
	BidStatusBidding        BidStatus = "Byder"
	BidStatusBoughtPickup   BidStatus = "Købt (Mangler afhentning)"
	BidStatusBoughtShipping BidStatus = "Købt (Mangler sendes)"
	BidStatusInTransit      BidStatus = "På vej"
	BidStatusInStock        BidStatus = "På lager"
	BidStatusLost           BidStatus = "Tabt"
	BidStatusSold           BidStatus = "Solgt"
)

type PartStatus string

const (
	PartStatusOrdered PartStatus = "Bestilt"
	PartStatusInStock PartStatus = "På lager"
	PartStatusUsed    PartStatus = "Brugt"
)

type CartAction string

const (
	CartActionAdd    CartAction = "add"
	CartActionRemove CartAction = "remove"
	CartActionUpdate CartAction = "update"
	CartActionView   CartAction = "view"
)

// ValidBidStatus reports whether s belongs to the closed set of bid
// statuses. Unknown values are rejected at the request boundary so the
// transition logic never sees them.
func ValidBidStatus(s BidStatus) bool {
	switch s {
	case BidStatusBidding, BidStatusBoughtPickup, BidStatusBoughtShipping,
		BidStatusInTransit, BidStatusInStock, BidStatusLost, BidStatusSold:
		return true
	}
	return false
}

func ValidPartStatus(s PartStatus) bool {
	switch s {
	case PartStatusOrdered, PartStatusInStock, PartStatusUsed:
		return true
	}
	return false
}
