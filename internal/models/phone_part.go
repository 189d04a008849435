// internal/models/phone_part.go
package models

// PhonePart is a row in the supplier price catalog. The catalog is
// replaced wholesale by the offline ingestion job through the admin
// endpoints; the workflow only reads it for price lookups.
type PhonePart struct {
	BaseModel
	Name     string  `json:"name" gorm:"size:255;not null;index"`
	Price    float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Model    string  `json:"model" gorm:"size:255;not null"`
	Category string  `json:"category" gorm:"size:100;not null"`
	Variant  string  `json:"variant" gorm:"size:100;default:'Standard'"`
	Notes    string  `json:"notes,omitempty" gorm:"type:text"`
	InStock  bool    `json:"in_stock" gorm:"default:true"`
}
