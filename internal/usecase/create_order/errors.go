package create_order

import "errors"

var (
	// ErrCartNotFound возвращается, когда корзина не найдена в сервисе корзины
	ErrCartNotFound = errors.New("create_order: cart not found")

	// ErrCartEmpty возвращается, когда в корзине нет позиций
	ErrCartEmpty = errors.New("create_order: cart is empty")

	// ErrCartOwnership возвращается, когда корзина принадлежит другому пользователю
	ErrCartOwnership = errors.New("create_order: cart belongs to another user")

	// ErrDeliveryTypeNotFound возвращается, когда тип доставки не найден
	ErrDeliveryTypeNotFound = errors.New("create_order: delivery type not found")

	// ErrDateInPast возвращается, когда дата доставки раньше сегодняшней
	ErrDateInPast = errors.New("create_order: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceOrderDays
	ErrDateTooFarInFuture = errors.New("create_order: date is too far in the future")

	// ErrDateNotOfferable возвращается, когда на сегодня доставка уже не предлагается
	ErrDateNotOfferable = errors.New("create_order: same-day delivery is no longer offered")

	// ErrInvalidTimeSlot возвращается, когда окна нет у выбранного типа доставки
	ErrInvalidTimeSlot = errors.New("create_order: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда окно уже не успеть к выбранной дате
	ErrSlotNotAvailable = errors.New("create_order: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_order: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_order: internal error")
)
