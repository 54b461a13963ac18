package track_order

import (
	"context"

	"github.com/m04kA/SMC-BakeryService/internal/service/orders/models"
)

type OrderService interface {
	Track(ctx context.Context, trackingCode string) (*models.TrackingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
