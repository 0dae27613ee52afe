package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ComputeTotal combines the package price and add-on prices into the
// final payable amount:
//
//	packageCost = numberOfDays × dailyPrice(package, category)
//	addonCost   = price(addon, category) × (perDay ? numberOfDays : 1)
//	total       = packageCost + Σ addonCosts
//
// Любая ошибка ценообразования прерывает расчёт целиком - частичные
// суммы не возвращаются. Вся арифметика на decimal, плавающая точка
// для денег не используется.
func ComputeTotal(
	category domain.VehicleCategory,
	numberOfDays int,
	pkg domain.PackageSnapshot,
	addons []domain.AddOnSnapshot,
) (decimal.Decimal, error) {
	if numberOfDays < 1 {
		return decimal.Zero, fmt.Errorf("%w: number of days must be at least 1, got %d", ErrInvalidRange, numberOfDays)
	}

	dailyPrice, err := PackageDailyPrice(pkg, category)
	if err != nil {
		return decimal.Zero, err
	}

	total := dailyPrice.Mul(decimal.NewFromInt(int64(numberOfDays)))

	for _, addon := range addons {
		cost, err := AddonCost(addon, category, numberOfDays)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(cost)
	}

	return total, nil
}
