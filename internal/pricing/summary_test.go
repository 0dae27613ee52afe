package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID: 42,
		Car: domain.CarSnapshot{
			CarID:    7,
			Name:     "Nissan Sunny",
			Brand:    "Nissan",
			Category: domain.CategoryEconomy,
		},
		User: domain.UserSnapshot{
			Name:        "Jamila Rahimova",
			Email:       "jamila@example.com",
			Phone:       "+971500000001",
			Nationality: "AZ",
		},
		PickupAt:     time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		DropoffAt:    time.Date(2025, 10, 18, 10, 0, 0, 0, time.UTC),
		NumberOfDays: 3,
		SelectedAddOns: []domain.AddOnSnapshot{
			{
				AddOnID: 1,
				Name:    "GPS",
				PerDay:  true,
				Prices:  domain.CategoryPrices{domain.CategoryEconomy: decimal.RequireFromString("20.00")},
			},
			{
				AddOnID: 2,
				Name:    "ChildSeat",
				PerDay:  false,
				Prices:  domain.CategoryPrices{domain.CategoryEconomy: decimal.RequireFromString("50.00")},
			},
		},
		SelectedPackage: domain.PackageSnapshot{
			PackageID: 1,
			Name:      "Standard Protection",
			Prices:    domain.CategoryPrices{domain.CategoryEconomy: decimal.RequireFromString("100.00")},
		},
		TotalPrice: decimal.RequireFromString("410.00"),
		IsPaid:     false,
		Status:     domain.StatusConfirmed,
	}
}

func TestRenderLineItems_OrderAndFormatting(t *testing.T) {
	booking := sampleBooking()

	items, err := RenderLineItems(booking)
	require.NoError(t, err)
	require.Len(t, items, 9)

	// Идентификация клиента, машина, пакет, дополнения, итог - в этом порядке
	assert.Equal(t, LineItem{Label: "Name", Value: "Jamila Rahimova"}, items[0])
	assert.Equal(t, "Email", items[1].Label)
	assert.Equal(t, "Phone", items[2].Label)
	assert.Equal(t, "Nationality", items[3].Label)

	assert.Equal(t, "Car", items[4].Label)
	assert.Equal(t, "Nissan Sunny", items[4].Value)
	assert.Equal(t, "3 rental days", items[4].Formula)

	assert.Equal(t, "Package : Standard Protection", items[5].Label)
	assert.Equal(t, "AED 300.00", items[5].Value)
	assert.Equal(t, "3 days × 100.00 AED", items[5].Formula)

	assert.Equal(t, "GPS", items[6].Label)
	assert.Equal(t, "AED 60.00", items[6].Value)
	assert.Equal(t, "Per Day", items[6].Formula)

	assert.Equal(t, "ChildSeat", items[7].Label)
	assert.Equal(t, "AED 50.00", items[7].Value)
	assert.Empty(t, items[7].Formula)

	assert.Equal(t, "Total Price", items[8].Label)
	assert.Equal(t, "AED 410.00", items[8].Value)
	assert.Equal(t, "Payable upon dropoff", items[8].Formula)
}

func TestRenderLineItems_PaidBooking(t *testing.T) {
	booking := sampleBooking()
	booking.IsPaid = true

	items, err := RenderLineItems(booking)
	require.NoError(t, err)

	last := items[len(items)-1]
	assert.Equal(t, "Paid", last.Formula)
}

func TestRenderLineItems_DoesNotMutateBooking(t *testing.T) {
	booking := sampleBooking()
	before := booking.TotalPrice

	_, err := RenderLineItems(booking)
	require.NoError(t, err)

	assert.True(t, booking.TotalPrice.Equal(before))
	assert.Len(t, booking.SelectedAddOns, 2)
}

func TestRenderLineItems_MissingPriceFails(t *testing.T) {
	booking := sampleBooking()
	// У snapshot-а пакета нет цены для категории бронирования
	booking.SelectedPackage.Prices = domain.CategoryPrices{}

	_, err := RenderLineItems(booking)
	assert.ErrorIs(t, err, ErrMissingPrice)
}
