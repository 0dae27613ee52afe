package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// LineItem одна строка разбивки стоимости для экрана и чека
type LineItem struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Formula string `json:"formula,omitempty"`
}

// RenderLineItems assembles the human-readable breakdown of a booking:
// customer identity lines, the car, the package, one line per add-on and
// the total, in the same order the charges are aggregated.
//
// Чистая функция форматирования: бронирование не изменяется, суммы
// отображаются с двумя знаками, хранимые значения остаются с полной
// точностью. Отсутствие цены в snapshot - ошибка, строка не
// пропускается молча.
func RenderLineItems(b *domain.Booking) ([]LineItem, error) {
	items := []LineItem{
		{Label: "Name", Value: b.User.Name},
		{Label: "Email", Value: b.User.Email},
		{Label: "Phone", Value: b.User.Phone},
		{Label: "Nationality", Value: b.User.Nationality},
		{
			Label:   "Car",
			Value:   b.Car.Name,
			Formula: fmt.Sprintf("%d rental days", b.NumberOfDays),
		},
	}

	category := b.Car.Category

	dailyPrice, err := PackageDailyPrice(b.SelectedPackage, category)
	if err != nil {
		return nil, err
	}
	packageCost := dailyPrice.Mul(decimal.NewFromInt(int64(b.NumberOfDays)))

	items = append(items, LineItem{
		Label:   fmt.Sprintf("Package : %s", b.SelectedPackage.Name),
		Value:   formatAmount(packageCost),
		Formula: fmt.Sprintf("%d days × %s %s", b.NumberOfDays, dailyPrice.StringFixed(2), domain.CurrencyCode),
	})

	for _, addon := range b.SelectedAddOns {
		cost, err := AddonCost(addon, category, b.NumberOfDays)
		if err != nil {
			return nil, err
		}

		formula := ""
		if addon.PerDay {
			formula = "Per Day"
		}

		items = append(items, LineItem{
			Label:   addon.Name,
			Value:   formatAmount(cost),
			Formula: formula,
		})
	}

	totalFormula := "Payable upon dropoff"
	if b.IsPaid {
		totalFormula = "Paid"
	}

	items = append(items, LineItem{
		Label:   "Total Price",
		Value:   formatAmount(b.TotalPrice),
		Formula: totalFormula,
	})

	return items, nil
}

func formatAmount(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", domain.CurrencyCode, amount.StringFixed(2))
}
