package cartservice

import "errors"

var (
	// ErrCartNotFound возвращается, когда корзина не найдена
	ErrCartNotFound = errors.New("cartservice client: cart not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("cartservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("cartservice client: invalid response")
)
