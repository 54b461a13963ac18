package track_order

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BakeryService/internal/api/handlers"
	"github.com/m04kA/SMC-BakeryService/internal/service/orders"
)

const (
	msgInvalidTrackingCode = "некорректный код отслеживания"
	msgNotFound            = "заказ не найден"
)

type Handler struct {
	service OrderService
	logger  Logger
}

func NewHandler(service OrderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/orders/track/{trackingCode}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trackingCode := mux.Vars(r)["trackingCode"]

	result, err := h.service.Track(r.Context(), trackingCode)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("GET /orders/track/{code} - Invalid tracking code: %q", trackingCode)
			handlers.RespondBadRequest(w, msgInvalidTrackingCode)

		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("GET /orders/track/{code} - Order not found: code=%s", trackingCode)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /orders/track/{code} - Failed to track order: code=%s, error=%v", trackingCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
