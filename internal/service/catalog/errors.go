package catalog

import "errors"

var (
	// ErrDeliveryTypeNotFound возвращается, когда тип доставки не найден
	ErrDeliveryTypeNotFound = errors.New("catalog: delivery type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
