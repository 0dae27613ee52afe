package quote_booking

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("quote_booking: car not found")

	// ErrPackageNotFound возвращается, когда пакет не найден
	ErrPackageNotFound = errors.New("quote_booking: package not found")

	// ErrAddonNotFound возвращается, когда одно из дополнений не найдено
	ErrAddonNotFound = errors.New("quote_booking: addon not found")

	// ErrInvalidPeriod возвращается при некорректном периоде аренды
	ErrInvalidPeriod = errors.New("quote_booking: invalid rental period")

	// ErrPriceNotSet возвращается, когда в каталоге нет цены для категории автомобиля
	ErrPriceNotSet = errors.New("quote_booking: price not set for vehicle category")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_booking: internal error")
)
