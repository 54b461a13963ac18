package get_delivery_calendar

import (
	"time"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
)

// Request модель запроса календаря доставки
type Request struct {
	Month  string            // Месяц в формате "2025-10", пусто = текущий
	CartID *string           // ID корзины в сервисе корзины (опционально)
	Items  []domain.CartItem // Позиции корзины, если CartID не указан
}

// Response модель ответа с сеткой месяца
type Response struct {
	Month            time.Time // Первое число месяца
	PreparationHours int
	EarliestDate     time.Time
	LatestDate       *time.Time // nil = без ограничения
	Days             []domain.CalendarDay
}
