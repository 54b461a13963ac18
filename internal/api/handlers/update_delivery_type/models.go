package update_delivery_type

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BakeryService/internal/service/catalog/models"
)

// UpdateDeliveryTypeRequest HTTP request model
type UpdateDeliveryTypeRequest struct {
	Price       *decimal.Decimal `json:"price,omitempty"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=500"`
	Popular     *bool            `json:"popular,omitempty"`
	Premium     *bool            `json:"premium,omitempty"`
	SortOrder   *int             `json:"sortOrder,omitempty" validate:"omitempty,min=0"`
	TimeSlots   []string         `json:"timeSlots,omitempty" validate:"omitempty,max=24,dive,required"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateDeliveryTypeRequest) ToServiceRequest() *models.UpdateDeliveryTypeRequest {
	return &models.UpdateDeliveryTypeRequest{
		Price:       r.Price,
		Description: r.Description,
		Popular:     r.Popular,
		Premium:     r.Premium,
		SortOrder:   r.SortOrder,
		TimeSlots:   r.TimeSlots,
	}
}
