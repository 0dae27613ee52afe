package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func economyPackage(daily string) domain.PackageSnapshot {
	return domain.PackageSnapshot{
		PackageID: 1,
		Name:      "Standard Protection",
		Prices: domain.CategoryPrices{
			domain.CategoryEconomy: decimal.RequireFromString(daily),
		},
	}
}

func TestComputeTotal_ExampleScenario(t *testing.T) {
	// Economy, 3 дня, пакет 100/день, GPS 20/день, детское кресло 50 разово
	pkg := economyPackage("100.00")
	addons := []domain.AddOnSnapshot{
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
	}

	total, err := ComputeTotal(domain.CategoryEconomy, 3, pkg, addons)
	require.NoError(t, err)
	assert.Equal(t, "410.00", total.StringFixed(2))
}

func TestComputeTotal_EmptyAddons(t *testing.T) {
	pkg := economyPackage("100.00")

	total, err := ComputeTotal(domain.CategoryEconomy, 5, pkg, nil)
	require.NoError(t, err)

	// Без дополнений итог равен days × dailyPrice точно
	assert.True(t, total.Equal(decimal.RequireFromString("500.00")))
}

func TestComputeTotal_MonotonicInDays(t *testing.T) {
	pkg := economyPackage("75.50")
	addons := []domain.AddOnSnapshot{
		{
			AddOnID: 1,
			Name:    "GPS",
			PerDay:  true,
			Prices:  domain.CategoryPrices{domain.CategoryEconomy: decimal.RequireFromString("12.25")},
		},
	}

	prev := decimal.Zero
	for days := 1; days <= 30; days++ {
		total, err := ComputeTotal(domain.CategoryEconomy, days, pkg, addons)
		require.NoError(t, err)
		assert.True(t, total.GreaterThanOrEqual(prev),
			"total must not decrease when days grow: days=%d total=%s prev=%s", days, total, prev)
		prev = total
	}
}

func TestComputeTotal_Idempotent(t *testing.T) {
	pkg := economyPackage("100.00")
	addons := []domain.AddOnSnapshot{
		{
			AddOnID: 2,
			Name:    "ChildSeat",
			PerDay:  false,
			Prices:  domain.CategoryPrices{domain.CategoryEconomy: decimal.RequireFromString("50.00")},
		},
	}

	first, err := ComputeTotal(domain.CategoryEconomy, 3, pkg, addons)
	require.NoError(t, err)
	second, err := ComputeTotal(domain.CategoryEconomy, 3, pkg, addons)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}

func TestComputeTotal_MissingAddonPrice(t *testing.T) {
	pkg := economyPackage("100.00")
	addons := []domain.AddOnSnapshot{
		{
			AddOnID: 3,
			Name:    "Roof Box",
			PerDay:  false,
			// Цена есть только для SUV, бронирование на Economy
			Prices: domain.CategoryPrices{domain.CategoryCrossoverSUV: decimal.RequireFromString("30.00")},
		},
	}

	_, err := ComputeTotal(domain.CategoryEconomy, 3, pkg, addons)
	assert.ErrorIs(t, err, ErrMissingPrice)
}

func TestComputeTotal_MissingPackagePrice(t *testing.T) {
	pkg := domain.PackageSnapshot{Name: "Premium", Prices: domain.CategoryPrices{}}

	_, err := ComputeTotal(domain.CategoryEconomy, 3, pkg, nil)
	assert.ErrorIs(t, err, ErrMissingPrice)
}

func TestComputeTotal_InvalidDayCount(t *testing.T) {
	pkg := economyPackage("100.00")

	_, err := ComputeTotal(domain.CategoryEconomy, 0, pkg, nil)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestComputeTotal_NoRoundingDriftAcrossLineItems(t *testing.T) {
	// Много копеечных позиций - сумма должна сходиться без дрейфа
	pkg := economyPackage("0.10")

	var addons []domain.AddOnSnapshot
	for i := 0; i < 100; i++ {
		addons = append(addons, domain.AddOnSnapshot{
			AddOnID: int64(i),
			Name:    "Sticker",
			PerDay:  true,
			Prices:  domain.CategoryPrices{domain.CategoryEconomy: decimal.RequireFromString("0.01")},
		})
	}

	total, err := ComputeTotal(domain.CategoryEconomy, 3, pkg, addons)
	require.NoError(t, err)

	// 3 × 0.10 + 100 × 3 × 0.01 = 3.30
	assert.True(t, total.Equal(decimal.RequireFromString("3.30")), "got %s", total)
}
