package get_bestsellers

import (
	"context"

	"github.com/m04kA/SMC-BakeryService/internal/service/bestsellers/models"
)

type BestsellerService interface {
	List(ctx context.Context) (*models.BestsellerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
