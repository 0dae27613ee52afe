package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// AddonPrice возвращает цену дополнения для категории автомобиля
func AddonPrice(addon domain.AddOnSnapshot, category domain.VehicleCategory) (decimal.Decimal, error) {
	price, ok := addon.Prices.For(category)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: addon %q, category %s", ErrMissingPrice, addon.Name, category)
	}
	return price, nil
}

// AddonCost возвращает полную стоимость дополнения за бронирование:
// per-day дополнения умножаются на число дней, остальные считаются один раз
func AddonCost(addon domain.AddOnSnapshot, category domain.VehicleCategory, numberOfDays int) (decimal.Decimal, error) {
	price, err := AddonPrice(addon, category)
	if err != nil {
		return decimal.Zero, err
	}

	if addon.PerDay {
		return price.Mul(decimal.NewFromInt(int64(numberOfDays))), nil
	}
	return price, nil
}
