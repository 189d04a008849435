// internal/services/buyer.go
package services

import (
	"github.com/flipbase/flipbase-backend/internal/models"
)

// buyerMatch returns the where clause that finds the existing customer
// for a sale. Email and phone are both unique when present; a request
// carrying both matches on either. The third return is false when the
// request has nothing to match on.
func buyerMatch(req *UpdateBuyerRequest) (string, []interface{}, bool) {
	switch {
	case req.BuyerEmail != "" && req.BuyerPhone != "":
		return "email = ? OR phone = ?", []interface{}{req.BuyerEmail, req.BuyerPhone}, true
	case req.BuyerEmail != "":
		return "email = ?", []interface{}{req.BuyerEmail}, true
	case req.BuyerPhone != "":
		return "phone = ?", []interface{}{req.BuyerPhone}, true
	}
	return "", nil, false
}

// reconcileBuyer merges a sale's buyer details into the matched
// customer, or builds a new one when customer is nil. Name and address
// always follow the latest sale; email and phone only change when newly
// provided; the bid id is appended at most once. The matched row is
// updated in place, never duplicated.
func reconcileBuyer(customer *models.Customer, req *UpdateBuyerRequest, bidID string) *models.Customer {
	if customer == nil {
		customer = &models.Customer{}
	}

	customer.Name = req.BuyerName
	customer.Address = req.BuyerAddress
	if req.BuyerEmail != "" {
		customer.Email = &req.BuyerEmail
	}
	if req.BuyerPhone != "" {
		customer.Phone = &req.BuyerPhone
	}
	if !customer.HasBid(bidID) {
		customer.BidIDs = append(customer.BidIDs, bidID)
	}
	return customer
}
