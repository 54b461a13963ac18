package get_delivery_options

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	"github.com/m04kA/SMC-BakeryService/internal/integrations/cartservice"
)

// DeliveryCatalog интерфейс каталога типов доставки
type DeliveryCatalog interface {
	DeliveryTypes(ctx context.Context) ([]*domain.DeliveryType, error)
}

// CartServiceClient интерфейс клиента для сервиса корзины
type CartServiceClient interface {
	GetCart(ctx context.Context, cartID string) (*cartservice.Cart, error)
}

// Planner интерфейс планировщика доставки
type Planner interface {
	Today() time.Time
	Location() *time.Location
	IsToday(date time.Time) bool
	PreparationHours(items []domain.CartItem) int
	MinimumDeliverableInstant(prepHours int) int
	ShouldOfferToday(prepHours int) bool
	EarliestOfferableDate(prepHours int) time.Time
	LatestOfferableDate() (time.Time, bool)
	FilterDeliveryTypes(deliveryTypes []*domain.DeliveryType, date time.Time, prepHours int) []domain.DeliveryTypeAvailability
}

// MetricsRecorder интерфейс для учета решений по доставке на сегодня
type MetricsRecorder interface {
	RecordSameDayDecision(offered bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
