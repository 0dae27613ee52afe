package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrMarshalSnapshot возвращается при ошибке сериализации snapshot-полей
	ErrMarshalSnapshot = errors.New("booking.repository: failed to marshal snapshot")

	// ErrUnmarshalSnapshot возвращается при ошибке десериализации snapshot-полей
	ErrUnmarshalSnapshot = errors.New("booking.repository: failed to unmarshal snapshot")
)
