package get_orders

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BakeryService/internal/api/handlers"
	"github.com/m04kA/SMC-BakeryService/internal/service/orders"
)

const (
	msgInvalidQuery = "некорректные параметры фильтра"
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

// Handle GET /api/v1/admin/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/orders - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, orders.ErrInvalidInput) {
			h.logger.Warn("GET /admin/orders - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		h.logger.Error("GET /admin/orders - Failed to list orders: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/orders - Returned %d orders", len(result.Orders))
	handlers.RespondJSON(w, http.StatusOK, result)
}
