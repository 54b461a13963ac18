package manage_bestsellers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BakeryService/internal/api/handlers"
	"github.com/m04kA/SMC-BakeryService/internal/service/bestsellers"
	"github.com/m04kA/SMC-BakeryService/internal/service/bestsellers/models"
)

const (
	msgInvalidProductID   = "некорректный ID товара"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgProductNotFound    = "товар не найден"
	msgNotBestseller      = "товар не является хитом продаж"
)

type Handler struct {
	service BestsellerService
	logger  Logger
}

func NewHandler(service BestsellerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Add PUT /api/v1/admin/bestsellers/{productId}
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productID(w, r, "PUT /admin/bestsellers/{id}")
	if !ok {
		return
	}

	var req models.AddRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PUT /admin/bestsellers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), productID, req.Rank)
	if err != nil {
		h.respondError(w, "PUT /admin/bestsellers/{id}", productID, err)
		return
	}

	h.logger.Info("PUT /admin/bestsellers/{id} - Product id=%d is a bestseller", productID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Remove DELETE /api/v1/admin/bestsellers/{productId}
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productID(w, r, "DELETE /admin/bestsellers/{id}")
	if !ok {
		return
	}

	result, err := h.service.Remove(r.Context(), productID)
	if err != nil {
		h.respondError(w, "DELETE /admin/bestsellers/{id}", productID, err)
		return
	}

	h.logger.Info("DELETE /admin/bestsellers/{id} - Product id=%d removed from bestsellers", productID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Swap POST /api/v1/admin/bestsellers/swap
func (h *Handler) Swap(w http.ResponseWriter, r *http.Request) {
	var req models.SwapRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bestsellers/swap - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Swap(r.Context(), req.ProductA, req.ProductB)
	if err != nil {
		h.respondError(w, "POST /admin/bestsellers/swap", req.ProductA, err)
		return
	}

	h.logger.Info("POST /admin/bestsellers/swap - Swapped product id=%d and id=%d", req.ProductA, req.ProductB)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) productID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	raw := mux.Vars(r)["productId"]
	productID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || productID <= 0 {
		h.logger.Warn("%s - Invalid product ID: %q", route, raw)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return 0, false
	}
	return productID, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, productID int64, err error) {
	switch {
	case errors.Is(err, bestsellers.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	case errors.Is(err, bestsellers.ErrProductNotFound):
		h.logger.Warn("%s - Product not found: product_id=%d", route, productID)
		handlers.RespondNotFound(w, msgProductNotFound)

	case errors.Is(err, bestsellers.ErrNotBestseller):
		h.logger.Warn("%s - Not a bestseller: product_id=%d", route, productID)
		handlers.RespondConflict(w, msgNotBestseller)

	default:
		h.logger.Error("%s - Failed: product_id=%d, error=%v", route, productID, err)
		handlers.RespondInternalError(w)
	}
}
