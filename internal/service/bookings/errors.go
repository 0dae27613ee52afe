package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrCarNotFound возвращается, когда автомобиль для переназначения не найден
	ErrCarNotFound = errors.New("bookings.service: car not found")

	// ErrCannotChangeCar возвращается, когда машину в бронировании менять уже нельзя
	ErrCannotChangeCar = errors.New("bookings.service: booking car can no longer be changed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
