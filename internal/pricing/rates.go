package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RateTable per-category base prices plus the global online discount
// Значения приходят из каталога; таблица сама никуда не ходит
type RateTable struct {
	BasePrices       domain.CategoryPrices
	DiscountFraction decimal.Decimal
}

// BasePriceFor возвращает базовую суточную цену для категории
func (t *RateTable) BasePriceFor(category domain.VehicleCategory) (decimal.Decimal, error) {
	price, ok := t.BasePrices.For(category)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: base price for %s", ErrMissingPrice, category)
	}
	return price, nil
}

// CurrentDiscountFraction возвращает долю онлайн-скидки,
// предварительно проверив, что она лежит в [0,1]
func (t *RateTable) CurrentDiscountFraction() (decimal.Decimal, error) {
	if err := ValidateDiscountFraction(t.DiscountFraction); err != nil {
		return decimal.Zero, err
	}
	return t.DiscountFraction, nil
}

// ValidateDiscountFraction проверяет, что доля скидки лежит в [0,1]
// включительно. Значение вне диапазона - ошибка, а не молчаливое
// усечение
func ValidateDiscountFraction(fraction decimal.Decimal) error {
	if fraction.IsNegative() || fraction.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: got %s", ErrInvalidDiscount, fraction.String())
	}
	return nil
}

// DiscountedDailyPrice applies the online discount to a base daily price.
//
// Пересчёт выполняется один раз при редактировании каталога, а не при
// каждом бронировании: пакет хранит уже скорректированную цену.
func DiscountedDailyPrice(base, fraction decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateDiscountFraction(fraction); err != nil {
		return decimal.Zero, err
	}
	return base.Mul(decimal.NewFromInt(1).Sub(fraction)), nil
}
