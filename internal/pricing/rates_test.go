package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func TestValidateDiscountFraction(t *testing.T) {
	tests := []struct {
		name     string
		fraction string
		wantErr  bool
	}{
		{name: "zero is valid", fraction: "0", wantErr: false},
		{name: "ten percent", fraction: "0.10", wantErr: false},
		{name: "full discount is valid", fraction: "1", wantErr: false},
		{name: "150 percent rejected", fraction: "1.5", wantErr: true},
		{name: "negative rejected", fraction: "-0.1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDiscountFraction(decimal.RequireFromString(tt.fraction))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDiscount)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRateTable_BasePriceFor(t *testing.T) {
	table := &RateTable{
		BasePrices: domain.CategoryPrices{
			domain.CategoryEconomy: decimal.RequireFromString("89.00"),
		},
	}

	price, err := table.BasePriceFor(domain.CategoryEconomy)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("89.00")))

	_, err = table.BasePriceFor(domain.CategorySevenSeater)
	assert.ErrorIs(t, err, ErrMissingPrice)
}

func TestRateTable_CurrentDiscountFraction(t *testing.T) {
	table := &RateTable{DiscountFraction: decimal.RequireFromString("1.5")}

	_, err := table.CurrentDiscountFraction()
	assert.ErrorIs(t, err, ErrInvalidDiscount)
}

func TestDiscountedDailyPrice(t *testing.T) {
	base := decimal.RequireFromString("100.00")

	discounted, err := DiscountedDailyPrice(base, decimal.RequireFromString("0.10"))
	require.NoError(t, err)
	assert.Equal(t, "90.00", discounted.StringFixed(2))

	// Скидка вне диапазона не применяется молча
	_, err = DiscountedDailyPrice(base, decimal.RequireFromString("1.5"))
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	// Полная скидка обнуляет цену
	free, err := DiscountedDailyPrice(base, decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.True(t, free.IsZero())
}
