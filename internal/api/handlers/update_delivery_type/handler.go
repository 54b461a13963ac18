package update_delivery_type

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BakeryService/internal/api/handlers"
	"github.com/m04kA/SMC-BakeryService/internal/service/catalog"
)

const (
	msgInvalidDeliveryTypeID = "некорректный ID типа доставки"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgNotFound              = "тип доставки не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/delivery-types/{deliveryTypeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	deliveryTypeID, err := strconv.ParseInt(mux.Vars(r)["deliveryTypeId"], 10, 64)
	if err != nil || deliveryTypeID <= 0 {
		h.logger.Warn("PUT /admin/delivery-types/{id} - Invalid delivery type ID: %v", mux.Vars(r)["deliveryTypeId"])
		handlers.RespondBadRequest(w, msgInvalidDeliveryTypeID)
		return
	}

	var req UpdateDeliveryTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/delivery-types/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), deliveryTypeID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/delivery-types/{id} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, catalog.ErrDeliveryTypeNotFound):
			h.logger.Warn("PUT /admin/delivery-types/{id} - Delivery type not found: id=%d", deliveryTypeID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /admin/delivery-types/{id} - Failed to update delivery type: id=%d, error=%v", deliveryTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/delivery-types/{id} - Delivery type updated: id=%d", deliveryTypeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
