package create_order

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	"github.com/m04kA/SMC-BakeryService/internal/integrations/cartservice"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

// DeliveryTypeRepository интерфейс репозитория типов доставки
type DeliveryTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.DeliveryType, error)
}

// CartServiceClient интерфейс клиента для сервиса корзины
type CartServiceClient interface {
	GetCart(ctx context.Context, cartID string) (*cartservice.Cart, error)
}

// Planner интерфейс планировщика доставки
type Planner interface {
	Today() time.Time
	Location() *time.Location
	PreparationHours(items []domain.CartItem) int
	LatestOfferableDate() (time.Time, bool)
	IsDateSelectable(date time.Time, prepHours int) bool
	IsSlotAvailable(slotLabel string, date time.Time, prepHours int) bool
}

// TrackingCodeGenerator генерирует публичный код отслеживания
type TrackingCodeGenerator interface {
	Generate() string
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для учета созданных заказов
type MetricsRecorder interface {
	RecordOrderCreated(deliveryType string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
