package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem позиция корзины, как ее отдает сервис корзины
// Для планирования доставки читается только PreparationTime
type CartItem struct {
	ProductID       int64
	Name            string
	Quantity        int
	UnitPrice       decimal.Decimal
	PreparationTime string // Свободный текст: "3 hours", "4-6 hours", может быть пустым
}

// TimeSlot окно доставки внутри типа доставки, например "11 AM - 1 PM"
type TimeSlot struct {
	ID        int64
	Time      string
	SortOrder int
}

// DeliveryType represents a named delivery tier (Standard, Express, Midnight)
type DeliveryType struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Description string
	Icon        string
	Popular     bool
	Premium     bool
	SortOrder   int
	TimeSlots   []TimeSlot
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasTimeSlots returns true if the delivery type offers at least one window
func (d *DeliveryType) HasTimeSlots() bool {
	return len(d.TimeSlots) > 0
}

// FindTimeSlot ищет окно по метке
func (d *DeliveryType) FindTimeSlot(label string) (TimeSlot, bool) {
	for _, slot := range d.TimeSlots {
		if slot.Time == label {
			return slot, true
		}
	}
	return TimeSlot{}, false
}

// DeliverySettings параметры планировщика доставки
type DeliverySettings struct {
	DefaultPreparationHours int
	SafetyBufferMinutes     int
	SameDayCutoffHour       int
	AdvanceOrderDays        int // 0 = без ограничения
	Location                *time.Location
}

// DefaultDeliverySettings возвращает настройки по умолчанию
func DefaultDeliverySettings() DeliverySettings {
	return DeliverySettings{
		DefaultPreparationHours: DefaultPreparationHours,
		SafetyBufferMinutes:     DefaultSafetyBufferMinutes,
		SameDayCutoffHour:       DefaultSameDayCutoffHour,
		AdvanceOrderDays:        DefaultAdvanceOrderDays,
		Location:                time.Local,
	}
}

// HasAdvanceOrderLimit returns true if there's a limit on how far ahead an order can be scheduled
func (s DeliverySettings) HasAdvanceOrderLimit() bool {
	return s.AdvanceOrderDays > 0
}
