package get_delivery_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BakeryService/internal/api/handlers"
	getDeliveryCalendar "github.com/m04kA/SMC-BakeryService/internal/usecase/get_delivery_calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMonth       = "некорректный формат месяца, ожидается YYYY-MM"
	msgCartNotFound       = "корзина не найдена"
)

type Handler struct {
	useCase GetDeliveryCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetDeliveryCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/delivery/calendar
// Пустое тело = текущий месяц, корзина по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeliveryCalendarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /delivery/calendar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, getDeliveryCalendar.ErrInvalidMonth):
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, getDeliveryCalendar.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, getDeliveryCalendar.ErrCartNotFound):
			h.logger.Warn("POST /delivery/calendar - Cart not found")
			handlers.RespondNotFound(w, msgCartNotFound)

		default:
			h.logger.Error("POST /delivery/calendar - Failed to build calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
