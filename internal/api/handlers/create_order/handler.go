package create_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BakeryService/internal/api/handlers"
	"github.com/m04kA/SMC-BakeryService/internal/api/middleware"
	createOrder "github.com/m04kA/SMC-BakeryService/internal/usecase/create_order"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты доставки, ожидается YYYY-MM-DD"
	msgUnauthorized         = "отсутствует ID пользователя"
	msgCartNotFound         = "корзина не найдена"
	msgCartEmpty            = "корзина пуста"
	msgCartForbidden        = "корзина принадлежит другому пользователю"
	msgDeliveryTypeNotFound = "тип доставки не найден"
	msgDateInPast           = "дата доставки уже прошла"
	msgDateTooFar           = "дата доставки слишком далеко в будущем"
	msgDateNotOfferable     = "доставка на сегодня уже недоступна"
	msgInvalidTimeSlot      = "выбранного окна нет у этого типа доставки"
	msgSlotNotAvailable     = "выбранное окно доставки уже недоступно"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /orders - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - Invalid input: user_id=%d, %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createOrder.ErrCartNotFound):
			h.logger.Warn("POST /orders - Cart not found: user_id=%d, cart_id=%s", userID, req.CartID)
			handlers.RespondNotFound(w, msgCartNotFound)

		case errors.Is(err, createOrder.ErrCartEmpty):
			handlers.RespondBadRequest(w, msgCartEmpty)

		case errors.Is(err, createOrder.ErrCartOwnership):
			h.logger.Warn("POST /orders - Foreign cart: user_id=%d, cart_id=%s", userID, req.CartID)
			handlers.RespondForbidden(w, msgCartForbidden)

		case errors.Is(err, createOrder.ErrDeliveryTypeNotFound):
			handlers.RespondNotFound(w, msgDeliveryTypeNotFound)

		case errors.Is(err, createOrder.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createOrder.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createOrder.ErrDateNotOfferable):
			handlers.RespondConflict(w, msgDateNotOfferable)

		case errors.Is(err, createOrder.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createOrder.ErrSlotNotAvailable):
			h.logger.Warn("POST /orders - Slot not available: user_id=%d, slot=%q", userID, req.TimeSlot)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /orders - Failed to create order: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders - Order created: order_id=%d, tracking=%s, user_id=%d",
		result.ID, result.TrackingCode, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
