package manage_bestsellers

import (
	"context"

	"github.com/m04kA/SMC-BakeryService/internal/service/bestsellers/models"
)

type BestsellerService interface {
	Add(ctx context.Context, productID int64, rank *int) (*models.BestsellerListResponse, error)
	Remove(ctx context.Context, productID int64) (*models.BestsellerListResponse, error)
	Swap(ctx context.Context, productA, productB int64) (*models.BestsellerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
