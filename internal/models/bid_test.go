// internal/models/bid_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntersInventory(t *testing.T) {
	tests := []struct {
		name     string
		old      BidStatus
		updated  BidStatus
		expected bool
	}{
		{"bought to in stock", BidStatusBoughtPickup, BidStatusInStock, true},
		{"in transit to in stock", BidStatusInTransit, BidStatusInStock, true},
		{"in stock to in stock is a no-op", BidStatusInStock, BidStatusInStock, false},
		{"in stock to sold", BidStatusInStock, BidStatusSold, false},
		{"bidding to lost", BidStatusBidding, BidStatusLost, false},
		{"sold back to in stock re-enters", BidStatusSold, BidStatusInStock, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EntersInventory(tt.old, tt.updated))
		})
	}
}

func TestValidBidStatus(t *testing.T) {
	for _, status := range []BidStatus{
		BidStatusBidding,
		BidStatusBoughtPickup,
		BidStatusBoughtShipping,
		BidStatusInTransit,
		BidStatusInStock,
		BidStatusLost,
		BidStatusSold,
	} {
		assert.True(t, ValidBidStatus(status), string(status))
	}

	assert.False(t, ValidBidStatus(BidStatus("Ukendt")))
	assert.False(t, ValidBidStatus(BidStatus("")))
}

func TestValidPartStatus(t *testing.T) {
	assert.True(t, ValidPartStatus(PartStatusOrdered))
	assert.True(t, ValidPartStatus(PartStatusInStock))
	assert.True(t, ValidPartStatus(PartStatusUsed))
	assert.False(t, ValidPartStatus(PartStatus("Retur")))
}
