package create_order

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	createOrder "github.com/m04kA/SMC-BakeryService/internal/usecase/create_order"
)

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	CartID         string  `json:"cartId" validate:"required"`
	CustomerName   string  `json:"customerName" validate:"required,max=200"`
	Phone          string  `json:"phone" validate:"required,max=32"`
	Address        string  `json:"address" validate:"required,max=500"`
	DeliveryDate   string  `json:"deliveryDate" validate:"required"` // "2025-10-15"
	DeliveryTypeID int64   `json:"deliveryTypeId" validate:"required,gt=0"`
	TimeSlot       string  `json:"timeSlot" validate:"required"` // "11 AM - 1 PM"
	Notes          *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreateOrderRequest) ToUseCaseRequest(userID int64) (*createOrder.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.DeliveryDate)
	if err != nil {
		return nil, fmt.Errorf("parse deliveryDate: %w", err)
	}

	return &createOrder.Request{
		UserID:         userID,
		CartID:         r.CartID,
		CustomerName:   r.CustomerName,
		Phone:          r.Phone,
		Address:        r.Address,
		DeliveryDate:   date,
		DeliveryTypeID: r.DeliveryTypeID,
		TimeSlot:       r.TimeSlot,
		Notes:          r.Notes,
	}, nil
}

// OrderItemResponse позиция заказа
type OrderItemResponse struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

// CreateOrderResponse HTTP response model
type CreateOrderResponse struct {
	ID               int64               `json:"id"`
	TrackingCode     string              `json:"trackingCode"`
	Status           string              `json:"status"`
	DeliveryDate     string              `json:"deliveryDate"`
	DeliveryTypeID   int64               `json:"deliveryTypeId"`
	DeliveryTypeName string              `json:"deliveryTypeName"`
	TimeSlot         string              `json:"timeSlot"`
	PreparationHours int                 `json:"preparationHours"`
	Items            []OrderItemResponse `json:"items"`
	ItemsTotal       string              `json:"itemsTotal"`
	DeliveryPrice    string              `json:"deliveryPrice"`
	Total            string              `json:"total"`
	Notes            *string             `json:"notes,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createOrder.Response) *CreateOrderResponse {
	items := make([]OrderItemResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Subtotal:  item.Subtotal().StringFixed(2),
		}
	}

	return &CreateOrderResponse{
		ID:               resp.ID,
		TrackingCode:     resp.TrackingCode,
		Status:           resp.Status,
		DeliveryDate:     resp.DeliveryDate.Format(domain.DateFormat),
		DeliveryTypeID:   resp.DeliveryTypeID,
		DeliveryTypeName: resp.DeliveryTypeName,
		TimeSlot:         resp.TimeSlot,
		PreparationHours: resp.PreparationHours,
		Items:            items,
		ItemsTotal:       resp.ItemsTotal.StringFixed(2),
		DeliveryPrice:    resp.DeliveryPrice.StringFixed(2),
		Total:            resp.Total.StringFixed(2),
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt,
	}
}
