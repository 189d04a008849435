// internal/services/analytics_service.go
package services

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/flipbase/flipbase-backend/internal/config"
	"github.com/flipbase/flipbase-backend/internal/models"
	"github.com/flipbase/flipbase-backend/internal/utils"
)

// AnalyticsService records first-party visitor sessions for the public
// storefront. Until tracking is domain-aware every session is filed
// under the storefront's own company.
const trackerCompany = "flipbase"

type AnalyticsService struct {
	db  *gorm.DB
	geo *resty.Client
	cfg config.GeoConfig
}

func NewAnalyticsService(db *gorm.DB, cfg config.GeoConfig) *AnalyticsService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)

	return &AnalyticsService{
		db:  db,
		geo: client,
		cfg: cfg,
	}
}

type TrackRequest struct {
	SessionID string                 `json:"session_id,omitempty"`
	VisitorID string                 `json:"visitor_id,omitempty"`
	EventType string                 `json:"event_type,omitempty"`
	EventData map[string]interface{} `json:"event_data,omitempty"`
	PagePath  string                 `json:"page_path,omitempty"`
	PageTitle string                 `json:"page_title,omitempty"`
	Referrer  string                 `json:"referrer,omitempty"`
}

type TrackResponse struct {
	SessionID string `json:"session_id"`
	VisitorID string `json:"visitor_id"`
}

type CartRequest struct {
	SessionID   string            `json:"session_id" validate:"required"`
	Action      models.CartAction `json:"action" validate:"required,oneof=add remove update view"`
	ProductID   string            `json:"product_id,omitempty"`
	ProductName string            `json:"product_name,omitempty"`
	Quantity    int               `json:"quantity,omitempty"`
	Price       float64           `json:"price,omitempty"`
}

type geoResult struct {
	Status     string `json:"status"`
	Country    string `json:"country"`
	City       string `json:"city"`
	RegionName string `json:"regionName"`
}

// Track upserts the active session for the visitor and appends the
// page view and/or event carried in the request.
func (s *AnalyticsService) Track(req *TrackRequest, ipAddress, userAgent string) (*TrackResponse, error) {
	var session models.AnalyticsSession
	err := s.db.
		Where("session_id = ? AND company = ? AND is_active = ?", req.SessionID, trackerCompany, true).
		First(&session).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		sessionID := req.SessionID
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		visitorID := req.VisitorID
		if visitorID == "" {
			visitorID = uuid.NewString()
		}

		country, city, region := s.lookupGeo(ipAddress)

		session = models.AnalyticsSession{
			SessionID:    sessionID,
			VisitorID:    visitorID,
			IPAddress:    ipAddress,
			UserAgent:    userAgent,
			Referrer:     req.Referrer,
			Device:       DetectDevice(userAgent),
			Browser:      DetectBrowser(userAgent),
			OS:           DetectOS(userAgent),
			SessionStart: time.Now(),
			IsActive:     true,
			Country:      country,
			City:         city,
			Region:       region,
			Company:      trackerCompany,
		}
	} else if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	} else if session.Country == "" {
		// Sessions created before a geo lookup succeeded get filled in
		// on the next hit.
		session.Country, session.City, session.Region = s.lookupGeo(ipAddress)
	}

	if req.PagePath != "" {
		session.PageViews = append(session.PageViews, map[string]interface{}{
			"path":      req.PagePath,
			"title":     req.PageTitle,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}

	if req.EventType != "" {
		session.Events = append(session.Events, map[string]interface{}{
			"type":      req.EventType,
			"data":      req.EventData,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}

	if err := s.db.Save(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &TrackResponse{
		SessionID: session.SessionID,
		VisitorID: session.VisitorID,
	}, nil
}

// TrackCart appends cart activity to an existing active session.
func (s *AnalyticsService) TrackCart(req *CartRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	var session models.AnalyticsSession
	err := s.db.
		Where("session_id = ? AND company = ? AND is_active = ?", req.SessionID, trackerCompany, true).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	session.CartActivity = append(session.CartActivity, map[string]interface{}{
		"action":       string(req.Action),
		"product_id":   req.ProductID,
		"product_name": req.ProductName,
		"quantity":     req.Quantity,
		"price":        req.Price,
		"timestamp":    time.Now().Format(time.RFC3339),
	})

	if err := s.db.Save(&session).Error; err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// lookupGeo resolves a public IP to country/city/region. Private and
// loopback addresses are skipped and lookup failures are tolerated,
// tracking must never fail because the geo service is down.
func (s *AnalyticsService) lookupGeo(ipAddress string) (country, city, region string) {
	if !IsPublicIP(ipAddress) {
		return "Local", "Local", "Local"
	}

	var result geoResult
	resp, err := s.geo.R().
		SetResult(&result).
		Get("/" + ipAddress)
	if err != nil || resp.IsError() {
		logrus.WithError(err).WithField("ip", ipAddress).Warn("Geolocation lookup failed")
		return "", "", ""
	}

	if result.Status != "success" {
		return "", "", ""
	}
	return result.Country, result.City, result.RegionName
}

// IsPublicIP reports whether the address is worth geolocating.
func IsPublicIP(ipAddress string) bool {
	ip := net.ParseIP(ipAddress)
	if ip == nil {
		return false
	}
	return !ip.IsLoopback() && !ip.IsPrivate() && !ip.IsUnspecified()
}

// DetectDevice classifies the user agent as desktop, mobile or tablet.
func DetectDevice(userAgent string) string {
	if strings.Contains(userAgent, "iPad") {
		return "tablet"
	}
	for _, marker := range []string{"Mobile", "Android", "iPhone"} {
		if strings.Contains(userAgent, marker) {
			return "mobile"
		}
	}
	return "desktop"
}

func DetectBrowser(userAgent string) string {
	switch {
	case strings.Contains(userAgent, "Edge"):
		return "Edge"
	case strings.Contains(userAgent, "Chrome"):
		return "Chrome"
	case strings.Contains(userAgent, "Firefox"):
		return "Firefox"
	case strings.Contains(userAgent, "Safari"):
		return "Safari"
	}
	return "Other"
}

func DetectOS(userAgent string) string {
	switch {
	case strings.Contains(userAgent, "Windows"):
		return "Windows"
	case strings.Contains(userAgent, "Android"):
		return "Android"
	case strings.Contains(userAgent, "iPhone"), strings.Contains(userAgent, "iPad"), strings.Contains(userAgent, "iOS"):
		return "iOS"
	case strings.Contains(userAgent, "Mac"):
		return "macOS"
	case strings.Contains(userAgent, "Linux"):
		return "Linux"
	}
	return "Other"
}
