package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
)

// Request модели

// UpdateDeliveryTypeRequest частичное обновление типа доставки
// TimeSlots == nil означает "окна не менять", пустой слайс удаляет все окна
type UpdateDeliveryTypeRequest struct {
	Price       *decimal.Decimal `json:"price,omitempty"`
	Description *string          `json:"description,omitempty"`
	Popular     *bool            `json:"popular,omitempty"`
	Premium     *bool            `json:"premium,omitempty"`
	SortOrder   *int             `json:"sortOrder,omitempty"`
	TimeSlots   []string         `json:"timeSlots,omitempty"`
}

// Response модели

// DeliveryTypeResponse тип доставки для витрины
type DeliveryTypeResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Popular     bool      `json:"popular"`
	Premium     bool      `json:"premium"`
	SortOrder   int       `json:"sortOrder"`
	TimeSlots   []string  `json:"timeSlots"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DeliveryTypeListResponse ответ со списком типов доставки
type DeliveryTypeListResponse struct {
	DeliveryTypes []DeliveryTypeResponse `json:"deliveryTypes"`
}

// Методы конвертации

// FromDomainDeliveryType конвертирует domain модель в DTO
func FromDomainDeliveryType(d *domain.DeliveryType) *DeliveryTypeResponse {
	if d == nil {
		return nil
	}

	slots := make([]string, len(d.TimeSlots))
	for i, slot := range d.TimeSlots {
		slots[i] = slot.Time
	}

	return &DeliveryTypeResponse{
		ID:          d.ID,
		Name:        d.Name,
		Price:       d.Price.StringFixed(2),
		Description: d.Description,
		Icon:        d.Icon,
		Popular:     d.Popular,
		Premium:     d.Premium,
		SortOrder:   d.SortOrder,
		TimeSlots:   slots,
		UpdatedAt:   d.UpdatedAt,
	}
}

// FromDomainDeliveryTypeList конвертирует список domain моделей в DTO
func FromDomainDeliveryTypeList(deliveryTypes []*domain.DeliveryType) *DeliveryTypeListResponse {
	resp := &DeliveryTypeListResponse{
		DeliveryTypes: make([]DeliveryTypeResponse, 0, len(deliveryTypes)),
	}

	for _, d := range deliveryTypes {
		if item := FromDomainDeliveryType(d); item != nil {
			resp.DeliveryTypes = append(resp.DeliveryTypes, *item)
		}
	}

	return resp
}

// ApplyTo применяет обновления к типу доставки
// Обновляются только непустые (not nil) поля из request
func (r *UpdateDeliveryTypeRequest) ApplyTo(d *domain.DeliveryType) {
	if r.Price != nil {
		d.Price = *r.Price
	}
	if r.Description != nil {
		d.Description = *r.Description
	}
	if r.Popular != nil {
		d.Popular = *r.Popular
	}
	if r.Premium != nil {
		d.Premium = *r.Premium
	}
	if r.SortOrder != nil {
		d.SortOrder = *r.SortOrder
	}
	if r.TimeSlots != nil {
		slots := make([]domain.TimeSlot, len(r.TimeSlots))
		for i, label := range r.TimeSlots {
			slots[i] = domain.TimeSlot{Time: label, SortOrder: i + 1}
		}
		d.TimeSlots = slots
	}
}
