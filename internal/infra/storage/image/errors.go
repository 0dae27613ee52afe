package image

import "errors"

var (
	// ErrImageNotFound возвращается, когда картинка не найдена
	ErrImageNotFound = errors.New("image.repository: image not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("image.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("image.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("image.repository: failed to scan row")
)
