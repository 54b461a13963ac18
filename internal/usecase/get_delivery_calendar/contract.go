package get_delivery_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	"github.com/m04kA/SMC-BakeryService/internal/integrations/cartservice"
)

// CartServiceClient интерфейс клиента для сервиса корзины
type CartServiceClient interface {
	GetCart(ctx context.Context, cartID string) (*cartservice.Cart, error)
}

// Planner интерфейс планировщика доставки
type Planner interface {
	Today() time.Time
	Location() *time.Location
	PreparationHours(items []domain.CartItem) int
	EarliestOfferableDate(prepHours int) time.Time
	LatestOfferableDate() (time.Time, bool)
	CalendarDays(monthAnchor time.Time, prepHours int) []domain.CalendarDay
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
