package pricing

import "errors"

var (
	// ErrInvalidRange возвращается, когда dropoff раньше pickup
	ErrInvalidRange = errors.New("pricing: invalid rental period")

	// ErrInvalidDiscount возвращается, когда доля скидки вне [0,1]
	// Такая скидка не применяется молча - расчёт отклоняется целиком
	ErrInvalidDiscount = errors.New("pricing: discount fraction outside [0,1]")

	// ErrMissingPrice возвращается, когда для категории автомобиля
	// нет цены. Нулевая цена по умолчанию не подставляется - это
	// защита от незаметного недосписания
	ErrMissingPrice = errors.New("pricing: no price for vehicle category")
)
