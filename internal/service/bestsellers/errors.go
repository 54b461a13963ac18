package bestsellers

import "errors"

var (
	// ErrProductNotFound возвращается, когда товар не найден
	ErrProductNotFound = errors.New("bestsellers: product not found")

	// ErrNotBestseller возвращается, когда товар не входит в список хитов
	ErrNotBestseller = errors.New("bestsellers: product is not a bestseller")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bestsellers: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bestsellers: internal error")
)
