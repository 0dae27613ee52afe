package create_booking

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("create_booking: car not found")

	// ErrPackageNotFound возвращается, когда пакет не найден
	ErrPackageNotFound = errors.New("create_booking: package not found")

	// ErrAddonNotFound возвращается, когда одно из дополнений не найдено
	ErrAddonNotFound = errors.New("create_booking: addon not found")

	// ErrInvalidPeriod возвращается при некорректном периоде аренды
	ErrInvalidPeriod = errors.New("create_booking: invalid rental period")

	// ErrPickupInPast возвращается, когда дата получения уже прошла
	ErrPickupInPast = errors.New("create_booking: pickup date is in the past")

	// ErrPriceNotSet возвращается, когда в каталоге нет цены для категории автомобиля
	ErrPriceNotSet = errors.New("create_booking: price not set for vehicle category")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
