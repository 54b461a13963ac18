package get_delivery_calendar

import (
	"context"

	getDeliveryCalendar "github.com/m04kA/SMC-BakeryService/internal/usecase/get_delivery_calendar"
)

type GetDeliveryCalendarUseCase interface {
	Execute(ctx context.Context, req *getDeliveryCalendar.Request) (*getDeliveryCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
