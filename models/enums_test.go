package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant-manager/models"
)

func TestParseTableStatus(t *testing.T) {
	for _, value := range []string{"Available", "Occupied", "Booked", "Reserved"} {
		status, err := models.ParseTableStatus(value)
		assert.NoError(t, err)
		assert.Equal(t, models.TableStatus(value), status)
	}

	// Matching is exact, including case.
	_, err := models.ParseTableStatus("available")
	var enumErr *models.InvalidEnumError
	assert.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "available", enumErr.Value)
	assert.Contains(t, enumErr.Error(), "Available")
}

func TestParseOrderStatus(t *testing.T) {
	status, err := models.ParseOrderStatus("Preparing")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderPreparing, status)

	_, err = models.ParseOrderStatus("Burnt")
	var enumErr *models.InvalidEnumError
	assert.ErrorAs(t, err, &enumErr)
}

func TestParsePaymentMethod(t *testing.T) {
	method, err := models.ParsePaymentMethod("UPI")
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentUPI, method)

	_, err = models.ParsePaymentMethod("Cheque")
	var enumErr *models.InvalidEnumError
	assert.ErrorAs(t, err, &enumErr)
}

func TestParseBookingStatus(t *testing.T) {
	status, err := models.ParseBookingStatus("Cancelled")
	assert.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, status)

	_, err = models.ParseBookingStatus("")
	var enumErr *models.InvalidEnumError
	assert.ErrorAs(t, err, &enumErr)
}

func TestParseUserRole(t *testing.T) {
	role, err := models.ParseUserRole("KitchenStaff")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleKitchenStaff, role)

	_, err = models.ParseUserRole("Admin")
	var enumErr *models.InvalidEnumError
	assert.ErrorAs(t, err, &enumErr)
}
