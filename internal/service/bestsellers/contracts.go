package bestsellers

import (
	"context"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
)

// ProductRepository интерфейс репозитория товаров
type ProductRepository interface {
	ListBestsellers(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	SetBestseller(ctx context.Context, id int64, isBestseller bool, rank *int) error
	UpdateRank(ctx context.Context, id int64, rank int) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
