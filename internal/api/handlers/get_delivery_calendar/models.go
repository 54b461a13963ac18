package get_delivery_calendar

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	getDeliveryCalendar "github.com/m04kA/SMC-BakeryService/internal/usecase/get_delivery_calendar"
)

// CartItemRequest позиция корзины, переданная напрямую
type CartItemRequest struct {
	ProductID       int64           `json:"productId" validate:"required,gt=0"`
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity" validate:"required,min=1,max=100"`
	Price           decimal.Decimal `json:"price"`
	PreparationTime string          `json:"preparationTime"`
}

// DeliveryCalendarRequest HTTP request model
type DeliveryCalendarRequest struct {
	Month  string            `json:"month,omitempty"` // "2025-10", пусто = текущий месяц
	CartID *string           `json:"cartId,omitempty" validate:"omitempty,min=1"`
	Items  []CartItemRequest `json:"items,omitempty" validate:"omitempty,dive"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *DeliveryCalendarRequest) ToUseCaseRequest() *getDeliveryCalendar.Request {
	items := make([]domain.CartItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.CartItem{
			ProductID:       item.ProductID,
			Name:            item.Name,
			Quantity:        item.Quantity,
			UnitPrice:       item.Price,
			PreparationTime: item.PreparationTime,
		}
	}

	return &getDeliveryCalendar.Request{
		Month:  r.Month,
		CartID: r.CartID,
		Items:  items,
	}
}

// CalendarDayResponse день календарной сетки
type CalendarDayResponse struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	InMonth  bool   `json:"inMonth"`
	IsToday  bool   `json:"isToday"`
	Disabled bool   `json:"disabled"`
}

// DeliveryCalendarResponse HTTP response model
type DeliveryCalendarResponse struct {
	Month            string                `json:"month"`
	PreparationHours int                   `json:"preparationHours"`
	EarliestDate     string                `json:"earliestDate"`
	LatestDate       *string               `json:"latestDate,omitempty"`
	Days             []CalendarDayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDeliveryCalendar.Response) *DeliveryCalendarResponse {
	result := &DeliveryCalendarResponse{
		Month:            resp.Month.Format(domain.MonthFormat),
		PreparationHours: resp.PreparationHours,
		EarliestDate:     resp.EarliestDate.Format(domain.DateFormat),
		Days:             make([]CalendarDayResponse, len(resp.Days)),
	}

	if resp.LatestDate != nil {
		latest := resp.LatestDate.Format(domain.DateFormat)
		result.LatestDate = &latest
	}

	for i, day := range resp.Days {
		result.Days[i] = CalendarDayResponse{
			Date:     day.Date.Format(domain.DateFormat),
			Day:      day.Date.Day(),
			InMonth:  day.InMonth,
			IsToday:  day.IsToday,
			Disabled: day.Disabled,
		}
	}

	return result
}
