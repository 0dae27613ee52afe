package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// PackageDailyPrice возвращает суточную цену пакета для категории
// Цена хранится уже с учётом онлайн-скидки (пересчёт - при
// редактировании каталога), здесь скидка повторно не применяется
func PackageDailyPrice(pkg domain.PackageSnapshot, category domain.VehicleCategory) (decimal.Decimal, error) {
	price, ok := pkg.Prices.For(category)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: package %q, category %s", ErrMissingPrice, pkg.Name, category)
	}
	return price, nil
}
