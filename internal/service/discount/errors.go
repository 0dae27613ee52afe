package discount

import "errors"

var (
	// ErrSettingNotFound настройка скидки не найдена
	ErrSettingNotFound = errors.New("discount setting not found")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)
