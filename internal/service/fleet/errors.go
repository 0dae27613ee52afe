package fleet

import "errors"

var (
	// ErrCarNotFound автомобиль не найден
	ErrCarNotFound = errors.New("car not found")

	// ErrImageNotFound изображение не найдено
	ErrImageNotFound = errors.New("image not found")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)
