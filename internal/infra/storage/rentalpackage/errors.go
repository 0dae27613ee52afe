package rentalpackage

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет не найден
	ErrPackageNotFound = errors.New("package.repository: package not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("package.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("package.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("package.repository: failed to scan row")

	// ErrMarshalFields возвращается при ошибке сериализации JSONB-полей
	ErrMarshalFields = errors.New("package.repository: failed to marshal fields")

	// ErrUnmarshalFields возвращается при ошибке десериализации JSONB-полей
	ErrUnmarshalFields = errors.New("package.repository: failed to unmarshal fields")
)
