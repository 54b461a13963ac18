package create_order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
)

// Request модель запроса на оформление заказа
type Request struct {
	UserID         int64     // ID пользователя
	CartID         string    // ID корзины в сервисе корзины
	CustomerName   string    // Имя получателя
	Phone          string    // Телефон получателя
	Address        string    // Адрес доставки
	DeliveryDate   time.Time // Дата доставки (без времени)
	DeliveryTypeID int64     // ID типа доставки
	TimeSlot       string    // Окно доставки, например "11 AM - 1 PM"
	Notes          *string   // Комментарий к заказу (опционально)
}

// Response модель ответа с созданным заказом
type Response struct {
	ID           int64  // ID созданного заказа
	TrackingCode string // Публичный код отслеживания
	UserID       int64
	Status       string

	DeliveryDate     time.Time
	DeliveryTypeID   int64
	DeliveryTypeName string
	TimeSlot         string
	PreparationHours int

	Items         []domain.OrderItem
	ItemsTotal    decimal.Decimal
	DeliveryPrice decimal.Decimal
	Total         decimal.Decimal
	Notes         *string

	CreatedAt time.Time
}
