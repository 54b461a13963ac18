package cancel_order

import (
	"github.com/m04kA/SMC-BakeryService/internal/service/orders/models"
	"github.com/m04kA/SMC-BakeryService/pkg/ptr"
)

// CancelOrderRequest HTTP request model
// Тело запроса необязательно
type CancelOrderRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty" validate:"omitempty,max=500"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelOrderRequest) ToServiceRequest(userID int64) *models.CancelOrderRequest {
	return &models.CancelOrderRequest{
		UserID:             userID,
		CancellationReason: ptr.Value(r.CancellationReason),
	}
}
