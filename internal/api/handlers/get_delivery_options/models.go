package get_delivery_options

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	getDeliveryOptions "github.com/m04kA/SMC-BakeryService/internal/usecase/get_delivery_options"
)

// CartItemRequest позиция корзины, переданная напрямую
type CartItemRequest struct {
	ProductID       int64           `json:"productId" validate:"required,gt=0"`
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity" validate:"required,min=1,max=100"`
	Price           decimal.Decimal `json:"price"`
	PreparationTime string          `json:"preparationTime"`
}

// ToDomain конвертирует позицию в доменную модель
func (i CartItemRequest) ToDomain() domain.CartItem {
	return domain.CartItem{
		ProductID:       i.ProductID,
		Name:            i.Name,
		Quantity:        i.Quantity,
		UnitPrice:       i.Price,
		PreparationTime: i.PreparationTime,
	}
}

// DeliveryOptionsRequest HTTP request model
type DeliveryOptionsRequest struct {
	Date   string            `json:"date" validate:"required"` // "2025-10-15"
	CartID *string           `json:"cartId,omitempty" validate:"omitempty,min=1"`
	Items  []CartItemRequest `json:"items,omitempty" validate:"omitempty,dive"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *DeliveryOptionsRequest) ToUseCaseRequest() (*getDeliveryOptions.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	items := make([]domain.CartItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = item.ToDomain()
	}

	return &getDeliveryOptions.Request{
		Date:   date,
		CartID: r.CartID,
		Items:  items,
	}, nil
}

// TimeSlotResponse окно доставки с доступностью
type TimeSlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// DeliveryTypeOptionResponse тип доставки с доступностью на дату
type DeliveryTypeOptionResponse struct {
	ID             int64              `json:"id"`
	Name           string             `json:"name"`
	Price          string             `json:"price"`
	Description    string             `json:"description"`
	Icon           string             `json:"icon"`
	Popular        bool               `json:"popular"`
	Premium        bool               `json:"premium"`
	Available      bool               `json:"available"`
	AvailableSlots int                `json:"availableSlots"`
	TimeSlots      []TimeSlotResponse `json:"timeSlots"`
}

// DeliveryOptionsResponse HTTP response model
type DeliveryOptionsResponse struct {
	Date                   string                       `json:"date"`
	PreparationHours       int                          `json:"preparationHours"`
	MinimumDeliverableTime *string                      `json:"minimumDeliverableTime"`
	OfferToday             bool                         `json:"offerToday"`
	EarliestDate           string                       `json:"earliestDate"`
	LatestDate             *string                      `json:"latestDate,omitempty"`
	AnyAvailable           bool                         `json:"anyAvailable"`
	DeliveryTypes          []DeliveryTypeOptionResponse `json:"deliveryTypes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDeliveryOptions.Response) *DeliveryOptionsResponse {
	result := &DeliveryOptionsResponse{
		Date:                   resp.Date.Format(domain.DateFormat),
		PreparationHours:       resp.PreparationHours,
		MinimumDeliverableTime: resp.MinimumDeliverableTime,
		OfferToday:             resp.OfferToday,
		EarliestDate:           resp.EarliestDate.Format(domain.DateFormat),
		AnyAvailable:           resp.AnyAvailable,
		DeliveryTypes:          make([]DeliveryTypeOptionResponse, 0, len(resp.DeliveryTypes)),
	}

	if resp.LatestDate != nil {
		latest := resp.LatestDate.Format(domain.DateFormat)
		result.LatestDate = &latest
	}

	for _, option := range resp.DeliveryTypes {
		slots := make([]TimeSlotResponse, len(option.Slots))
		for i, slot := range option.Slots {
			slots[i] = TimeSlotResponse{Time: slot.Time, Available: slot.Available}
		}

		result.DeliveryTypes = append(result.DeliveryTypes, DeliveryTypeOptionResponse{
			ID:             option.DeliveryType.ID,
			Name:           option.DeliveryType.Name,
			Price:          option.DeliveryType.Price.StringFixed(2),
			Description:    option.DeliveryType.Description,
			Icon:           option.DeliveryType.Icon,
			Popular:        option.DeliveryType.Popular,
			Premium:        option.DeliveryType.Premium,
			Available:      option.Available,
			AvailableSlots: option.AvailableSlotsCount(),
			TimeSlots:      slots,
		})
	}

	return result
}
