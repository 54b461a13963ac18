package get_delivery_options

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	"github.com/m04kA/SMC-BakeryService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.CartID != nil && *req.CartID == "" {
		return fmt.Errorf("%w: cartId must not be empty", ErrInvalidInput)
	}

	for i, item := range req.Items {
		if item.Quantity <= 0 || item.Quantity > domain.MaxOrderItemQuantity {
			return fmt.Errorf("%w: items[%d]: quantity must be in 1..%d", ErrInvalidInput, i, domain.MaxOrderItemQuantity)
		}
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом и не дальше окна предзаказа
func validateDate(date time.Time, planner Planner) error {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, planner.Location())

	if day.Before(planner.Today()) {
		return ErrDateInPast
	}

	if latest, ok := planner.LatestOfferableDate(); ok && day.After(latest) {
		return ErrDateTooFarInFuture
	}

	return nil
}

// formatMinutes переводит минуты от полуночи в "HH:MM"
// nil, если значение выходит за текущие сутки
func formatMinutes(minutes int) *string {
	ts, err := types.NewTimeStringFromMinutes(minutes)
	if err != nil {
		return nil
	}
	s := ts.String()
	return &s
}
