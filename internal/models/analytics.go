// internal/models/analytics.go
package models

import (
	"time"
)

// AnalyticsSession is one visitor session on the public storefront,
// written by the first-party tracker. Page views, events and cart
// activity are append-only JSONB lists on the session document.
type AnalyticsSession struct {
	BaseModel
	SessionID string `json:"session_id" gorm:"size:64;not null;index"`
	VisitorID string `json:"visitor_id" gorm:"size:64;not null;index"`
	IPAddress string `json:"ip_address" gorm:"size:64;not null"`
	UserAgent string `json:"user_agent,omitempty" gorm:"size:512"`
	Referrer  string `json:"referrer,omitempty" gorm:"size:1024"`

	PageViews    JSONBArray `json:"page_views" gorm:"type:jsonb"`
	Events       JSONBArray `json:"events" gorm:"type:jsonb"`
	CartActivity JSONBArray `json:"cart_activity" gorm:"type:jsonb"`

	SessionStart time.Time  `json:"session_start"`
	SessionEnd   *time.Time `json:"session_end,omitempty"`
	IsActive     bool       `json:"is_active" gorm:"default:true;index"`

	Device  string `json:"device,omitempty" gorm:"size:20"`
	Browser string `json:"browser,omitempty" gorm:"size:50"`
	OS      string `json:"os,omitempty" gorm:"size:50"`

	Country string `json:"country,omitempty" gorm:"size:100"`
	City    string `json:"city,omitempty" gorm:"size:100"`
	Region  string `json:"region,omitempty" gorm:"size:100"`

	Converted       bool     `json:"converted" gorm:"default:false"`
	ConversionValue *float64 `json:"conversion_value,omitempty" gorm:"type:decimal(10,2)"`

	// Company association for multi-tenant
	Company string `json:"company" gorm:"size:255;not null;index"`
}
