package get_delivery_types

import (
	"context"

	"github.com/m04kA/SMC-BakeryService/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context) (*models.DeliveryTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
