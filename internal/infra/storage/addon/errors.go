package addon

import "errors"

var (
	// ErrAddonNotFound возвращается, когда дополнение не найдено
	ErrAddonNotFound = errors.New("addon.repository: addon not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("addon.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("addon.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("addon.repository: failed to scan row")

	// ErrMarshalPrices возвращается при ошибке сериализации таблицы цен
	ErrMarshalPrices = errors.New("addon.repository: failed to marshal prices")

	// ErrUnmarshalPrices возвращается при ошибке десериализации таблицы цен
	ErrUnmarshalPrices = errors.New("addon.repository: failed to unmarshal prices")
)
