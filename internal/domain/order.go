package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusBaking         OrderStatus = "baking"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// orderTransitions допустимые переходы статусов заказа
var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusBaking, StatusCancelled},
	StatusBaking:         {StatusOutForDelivery},
	StatusOutForDelivery: {StatusDelivered},
}

// OrderItem позиция заказа, снимок корзины на момент оформления
type OrderItem struct {
	ProductID       int64           `json:"productId"`
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	PreparationTime string          `json:"preparationTime,omitempty"`
}

// Subtotal returns quantity * unit price
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order represents a customer order with its chosen delivery window
type Order struct {
	ID           int64
	TrackingCode string
	UserID       int64

	CustomerName string
	Phone        string
	Address      string

	// Доставка (выбранные дата и окно хранятся как есть)
	DeliveryDate     time.Time
	DeliveryTypeID   int64
	DeliveryTypeName string
	TimeSlot         string
	DeliveryPrice    decimal.Decimal
	PreparationHours int

	Items      []OrderItem
	ItemsTotal decimal.Decimal
	Total      decimal.Decimal
	Status     OrderStatus
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the order is still being processed
func (o *Order) IsActive() bool {
	for _, status := range InactiveStatuses {
		if o.Status == status {
			return false
		}
	}
	return true
}

// CanBeCancelled returns true if the order can still be cancelled
func (o *Order) CanBeCancelled() bool {
	return o.Status == StatusPending || o.Status == StatusConfirmed
}

// CanTransitionTo returns true if the status change is allowed
// Завершенный заказ больше не меняется
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	if !o.IsActive() {
		return false
	}
	for _, allowed := range orderTransitions[o.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RecalculateTotals пересчитывает сумму позиций и итог с доставкой
func (o *Order) RecalculateTotals() {
	itemsTotal := decimal.Zero
	for _, item := range o.Items {
		itemsTotal = itemsTotal.Add(item.Subtotal())
	}
	o.ItemsTotal = itemsTotal
	o.Total = itemsTotal.Add(o.DeliveryPrice)
}

// IsValidOrderStatus проверяет, что строка является известным статусом
func IsValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case StatusPending, StatusConfirmed, StatusBaking, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// OrdersFilter фильтр для списка заказов в админке
type OrdersFilter struct {
	Status          *OrderStatus // Фильтр по статусу (опционально)
	StartDate       *time.Time   // Начало периода по дате доставки (опционально)
	EndDate         *time.Time   // Конец периода по дате доставки (опционально)
	DeliveryTypeID  *int64       // Фильтр по типу доставки (опционально)
	IncludeInactive bool         // Включать ли доставленные и отмененные
	Limit           uint64
	Offset          uint64
}
