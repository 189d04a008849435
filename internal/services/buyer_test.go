// internal/services/buyer_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flipbase/flipbase-backend/internal/models"
)

func TestBuyerMatch(t *testing.T) {
	cond, args, ok := buyerMatch(&UpdateBuyerRequest{
		BuyerEmail: "kunde@mail.dk",
		BuyerPhone: "12345678",
	})
	require.True(t, ok)
	assert.Equal(t, "email = ? OR phone = ?", cond)
	assert.Equal(t, []interface{}{"kunde@mail.dk", "12345678"}, args)

	cond, args, ok = buyerMatch(&UpdateBuyerRequest{BuyerEmail: "kunde@mail.dk"})
	require.True(t, ok)
	assert.Equal(t, "email = ?", cond)
	assert.Equal(t, []interface{}{"kunde@mail.dk"}, args)

	cond, args, ok = buyerMatch(&UpdateBuyerRequest{BuyerPhone: "12345678"})
	require.True(t, ok)
	assert.Equal(t, "phone = ?", cond)
	assert.Equal(t, []interface{}{"12345678"}, args)

	_, _, ok = buyerMatch(&UpdateBuyerRequest{BuyerName: "Uden Kontakt"})
	assert.False(t, ok)
}

func TestReconcileBuyerUpdatesMatchedCustomerInPlace(t *testing.T) {
	email := "kunde@mail.dk"
	existing := &models.Customer{
		Name:  "Gammelt Navn",
		Email: &email,
	}
	existing.ID = uuid.New()
	bidID := uuid.NewString()

	result := reconcileBuyer(existing, &UpdateBuyerRequest{
		BuyerName:    "Nyt Navn",
		BuyerEmail:   "kunde@mail.dk",
		BuyerPhone:   "87654321",
		BuyerAddress: "Hovedgaden 1",
	}, bidID)

	// Same row, never a duplicate: the match is enriched in place.
	assert.Same(t, existing, result)
	assert.Equal(t, "Nyt Navn", result.Name)
	assert.Equal(t, "Hovedgaden 1", result.Address)
	require.NotNil(t, result.Phone)
	assert.Equal(t, "87654321", *result.Phone)
	require.NotNil(t, result.Email)
	assert.Equal(t, "kunde@mail.dk", *result.Email)
	assert.Equal(t, []string{bidID}, []string(result.BidIDs))
}

func TestReconcileBuyerCreatesWhenUnmatched(t *testing.T) {
	bidID := uuid.NewString()

	result := reconcileBuyer(nil, &UpdateBuyerRequest{
		BuyerName:  "Ny Kunde",
		BuyerPhone: "12345678",
	}, bidID)

	require.NotNil(t, result)
	assert.Equal(t, "Ny Kunde", result.Name)
	assert.Nil(t, result.Email)
	require.NotNil(t, result.Phone)
	assert.Equal(t, "12345678", *result.Phone)
	assert.Equal(t, []string{bidID}, []string(result.BidIDs))
}

func TestReconcileBuyerKeepsContactDetailsWhenAbsent(t *testing.T) {
	email := "kunde@mail.dk"
	phone := "12345678"
	existing := &models.Customer{
		Name:  "Kunde",
		Email: &email,
		Phone: &phone,
	}

	result := reconcileBuyer(existing, &UpdateBuyerRequest{
		BuyerName: "Kunde",
	}, uuid.NewString())

	require.NotNil(t, result.Email)
	assert.Equal(t, "kunde@mail.dk", *result.Email)
	require.NotNil(t, result.Phone)
	assert.Equal(t, "12345678", *result.Phone)
}

func TestReconcileBuyerAppendsBidAtMostOnce(t *testing.T) {
	bidID := uuid.NewString()
	existing := &models.Customer{
		Name:   "Kunde",
		BidIDs: []string{bidID},
	}

	result := reconcileBuyer(existing, &UpdateBuyerRequest{BuyerName: "Kunde"}, bidID)
	assert.Equal(t, []string{bidID}, []string(result.BidIDs))

	other := uuid.NewString()
	result = reconcileBuyer(result, &UpdateBuyerRequest{BuyerName: "Kunde"}, other)
	assert.Equal(t, []string{bidID, other}, []string(result.BidIDs))
}
