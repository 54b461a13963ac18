package get_delivery_calendar

import "errors"

var (
	// ErrCartNotFound возвращается, когда корзина не найдена в сервисе корзины
	ErrCartNotFound = errors.New("get_delivery_calendar: cart not found")

	// ErrInvalidMonth возвращается при некорректном месяце
	ErrInvalidMonth = errors.New("get_delivery_calendar: invalid month")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_delivery_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_delivery_calendar: internal error")
)
