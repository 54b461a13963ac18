package deliverytype

import "errors"

var (
	// ErrDeliveryTypeNotFound возвращается, когда тип доставки не найден
	ErrDeliveryTypeNotFound = errors.New("deliverytype.repository: delivery type not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("deliverytype.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("deliverytype.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("deliverytype.repository: failed to scan row")
)
