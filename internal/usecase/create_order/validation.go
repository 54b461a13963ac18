package create_order

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	"github.com/m04kA/SMC-BakeryService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CartID) == "" {
		return fmt.Errorf("%w: cartId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}

	if req.DeliveryDate.IsZero() {
		return fmt.Errorf("%w: deliveryDate is required", ErrInvalidInput)
	}

	if req.DeliveryTypeID <= 0 {
		return fmt.Errorf("%w: deliveryTypeId must be positive", ErrInvalidInput)
	}

	if err := types.SlotLabel(req.TimeSlot).Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет дату доставки относительно планировщика
func validateDate(date time.Time, prepHours int, planner Planner) error {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, planner.Location())

	if day.Before(planner.Today()) {
		return ErrDateInPast
	}

	if latest, ok := planner.LatestOfferableDate(); ok && day.After(latest) {
		return ErrDateTooFarInFuture
	}

	// Остается только случай "сегодня после отсечки"
	if !planner.IsDateSelectable(day, prepHours) {
		return ErrDateNotOfferable
	}

	return nil
}

// snapshotItems фиксирует позиции корзины в заказе
func snapshotItems(items []domain.CartItem) ([]domain.OrderItem, error) {
	result := make([]domain.OrderItem, 0, len(items))
	for i, item := range items {
		if item.Quantity <= 0 || item.Quantity > domain.MaxOrderItemQuantity {
			return nil, fmt.Errorf("%w: items[%d]: quantity must be in 1..%d", ErrInvalidInput, i, domain.MaxOrderItemQuantity)
		}
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: items[%d]: negative price", ErrInvalidInput, i)
		}
		result = append(result, domain.OrderItem{
			ProductID:       item.ProductID,
			Name:            item.Name,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			PreparationTime: item.PreparationTime,
		})
	}
	return result, nil
}
