package get_delivery_options

import (
	"context"

	getDeliveryOptions "github.com/m04kA/SMC-BakeryService/internal/usecase/get_delivery_options"
)

type GetDeliveryOptionsUseCase interface {
	Execute(ctx context.Context, req *getDeliveryOptions.Request) (*getDeliveryOptions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
