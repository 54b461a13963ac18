package get_delivery_options

import (
	"time"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
)

// Request модель запроса вариантов доставки
// Позиции берутся из корзины по CartID, либо передаются напрямую в Items
type Request struct {
	Date   time.Time         // Дата доставки (без времени)
	CartID *string           // ID корзины в сервисе корзины (опционально)
	Items  []domain.CartItem // Позиции корзины, если CartID не указан
}

// Response модель ответа с вариантами доставки на дату
type Response struct {
	Date                   time.Time
	PreparationHours       int
	MinimumDeliverableTime *string // "HH:MM", nil если сегодня уже ничего не успеть
	OfferToday             bool
	EarliestDate           time.Time
	LatestDate             *time.Time // nil = без ограничения
	DeliveryTypes          []domain.DeliveryTypeAvailability
	AnyAvailable           bool
}
