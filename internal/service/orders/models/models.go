package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid order status")
)

// Request модели

// CancelOrderRequest запрос на отмену заказа
type CancelOrderRequest struct {
	UserID             int64  `json:"-"`
	CancellationReason string `json:"cancellationReason" validate:"max=500"`
}

// UpdateStatusRequest запрос на смену статуса заказа
type UpdateStatusRequest struct {
	Status             string `json:"status" validate:"required"`
	CancellationReason string `json:"cancellationReason,omitempty" validate:"max=500"`
}

// ListOrdersRequest фильтр списка заказов для админки
type ListOrdersRequest struct {
	Status          *string
	StartDate       *time.Time
	EndDate         *time.Time
	DeliveryTypeID  *int64
	IncludeInactive bool
	Limit           uint64
	Offset          uint64
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListOrdersRequest) ToDomainFilter() (domain.OrdersFilter, error) {
	filter := domain.OrdersFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		DeliveryTypeID:  r.DeliveryTypeID,
		IncludeInactive: r.IncludeInactive,
		Limit:           r.Limit,
		Offset:          r.Offset,
	}

	if r.Status != nil {
		status, err := ToDomainOrderStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// OrderItemResponse позиция заказа
type OrderItemResponse struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

// OrderResponse ответ с данными заказа
type OrderResponse struct {
	ID           int64  `json:"id"`
	TrackingCode string `json:"trackingCode"`
	UserID       int64  `json:"userId"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`

	DeliveryDate     string `json:"deliveryDate"` // "2025-10-15"
	DeliveryTypeID   int64  `json:"deliveryTypeId"`
	DeliveryTypeName string `json:"deliveryTypeName"`
	TimeSlot         string `json:"timeSlot"` // "11 AM - 1 PM"
	PreparationHours int    `json:"preparationHours"`

	Items         []OrderItemResponse `json:"items"`
	ItemsTotal    string              `json:"itemsTotal"`
	DeliveryPrice string              `json:"deliveryPrice"`
	Total         string              `json:"total"`
	Status        string              `json:"status"`
	Notes         *string             `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderListResponse ответ со списком заказов
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// TrackingResponse публичный статус заказа по коду отслеживания (без персональных данных)
type TrackingResponse struct {
	TrackingCode     string    `json:"trackingCode"`
	Status           string    `json:"status"`
	DeliveryDate     string    `json:"deliveryDate"`
	DeliveryTypeName string    `json:"deliveryTypeName"`
	TimeSlot         string    `json:"timeSlot"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainOrder конвертирует domain модель в DTO
func FromDomainOrder(o *domain.Order) *OrderResponse {
	if o == nil {
		return nil
	}

	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Subtotal:  item.Subtotal().StringFixed(2),
		}
	}

	resp := &OrderResponse{
		ID:                 o.ID,
		TrackingCode:       o.TrackingCode,
		UserID:             o.UserID,
		CustomerName:       o.CustomerName,
		Phone:              o.Phone,
		Address:            o.Address,
		DeliveryDate:       o.DeliveryDate.Format(domain.DateFormat),
		DeliveryTypeID:     o.DeliveryTypeID,
		DeliveryTypeName:   o.DeliveryTypeName,
		TimeSlot:           o.TimeSlot,
		PreparationHours:   o.PreparationHours,
		Items:              items,
		ItemsTotal:         o.ItemsTotal.StringFixed(2),
		DeliveryPrice:      o.DeliveryPrice.StringFixed(2),
		Total:              o.Total.StringFixed(2),
		Status:             string(o.Status),
		Notes:              o.Notes,
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}

	if o.CancelledAt != nil {
		cancelledStr := o.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainOrderList конвертирует список domain моделей в DTO
func FromDomainOrderList(orders []*domain.Order) *OrderListResponse {
	resp := &OrderListResponse{
		Orders: make([]OrderResponse, 0, len(orders)),
	}

	for _, order := range orders {
		if orderResp := FromDomainOrder(order); orderResp != nil {
			resp.Orders = append(resp.Orders, *orderResp)
		}
	}

	return resp
}

// FromDomainTracking конвертирует заказ в публичный ответ отслеживания
func FromDomainTracking(o *domain.Order) *TrackingResponse {
	return &TrackingResponse{
		TrackingCode:     o.TrackingCode,
		Status:           string(o.Status),
		DeliveryDate:     o.DeliveryDate.Format(domain.DateFormat),
		DeliveryTypeName: o.DeliveryTypeName,
		TimeSlot:         o.TimeSlot,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// ToDomainOrderStatus конвертирует строку в domain.OrderStatus с валидацией
func ToDomainOrderStatus(status string) (domain.OrderStatus, error) {
	if !domain.IsValidOrderStatus(status) {
		return "", ErrInvalidStatus
	}
	return domain.OrderStatus(status), nil
}
