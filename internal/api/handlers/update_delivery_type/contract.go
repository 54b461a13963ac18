package update_delivery_type

import (
	"context"

	"github.com/m04kA/SMC-BakeryService/internal/service/catalog/models"
)

type CatalogService interface {
	Update(ctx context.Context, id int64, req *models.UpdateDeliveryTypeRequest) (*models.DeliveryTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
