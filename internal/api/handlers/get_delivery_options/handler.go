package get_delivery_options

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BakeryService/internal/api/handlers"
	getDeliveryOptions "github.com/m04kA/SMC-BakeryService/internal/usecase/get_delivery_options"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast         = "дата доставки уже прошла"
	msgDateTooFar         = "дата доставки слишком далеко в будущем"
	msgCartNotFound       = "корзина не найдена"
)

type Handler struct {
	useCase GetDeliveryOptionsUseCase
	logger  Logger
}

func NewHandler(useCase GetDeliveryOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/delivery/options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeliveryOptionsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /delivery/options - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /delivery/options - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDeliveryOptions.ErrInvalidInput):
			h.logger.Warn("POST /delivery/options - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, getDeliveryOptions.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getDeliveryOptions.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getDeliveryOptions.ErrCartNotFound):
			h.logger.Warn("POST /delivery/options - Cart not found")
			handlers.RespondNotFound(w, msgCartNotFound)

		default:
			h.logger.Error("POST /delivery/options - Failed to get delivery options: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
