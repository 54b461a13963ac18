package catalog

import (
	"context"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
)

// DeliveryTypeRepository интерфейс репозитория типов доставки
type DeliveryTypeRepository interface {
	List(ctx context.Context) ([]*domain.DeliveryType, error)
	GetByID(ctx context.Context, id int64) (*domain.DeliveryType, error)
	Update(ctx context.Context, deliveryType *domain.DeliveryType) error
	ReplaceTimeSlots(ctx context.Context, deliveryTypeID int64, slots []domain.TimeSlot) error
}

// DeliveryTypeCache интерфейс кэша каталога
type DeliveryTypeCache interface {
	Get(ctx context.Context) ([]*domain.DeliveryType, error)
	Set(ctx context.Context, deliveryTypes []*domain.DeliveryType) error
	Invalidate(ctx context.Context) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
