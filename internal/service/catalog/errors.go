package catalog

import "errors"

var (
	// ErrAddonNotFound дополнение не найдено
	ErrAddonNotFound = errors.New("addon not found")

	// ErrPackageNotFound пакет не найден
	ErrPackageNotFound = errors.New("package not found")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)
