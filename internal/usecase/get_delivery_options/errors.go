package get_delivery_options

import "errors"

var (
	// ErrCartNotFound возвращается, когда корзина не найдена в сервисе корзины
	ErrCartNotFound = errors.New("get_delivery_options: cart not found")

	// ErrDateInPast возвращается, когда дата доставки раньше сегодняшней
	ErrDateInPast = errors.New("get_delivery_options: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceOrderDays
	ErrDateTooFarInFuture = errors.New("get_delivery_options: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_delivery_options: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_delivery_options: internal error")
)
