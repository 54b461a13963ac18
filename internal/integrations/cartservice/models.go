package cartservice

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Cart модель корзины из сервиса корзины
type Cart struct {
	ID     string     `json:"id"`
	UserID int64      `json:"userId"`
	Items  []CartItem `json:"items"`
}

// CartItem позиция корзины
type CartItem struct {
	ProductID       int64           `json:"productId"`
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	PreparationTime string          `json:"preparationTime"`
}

// DomainItems конвертирует позиции в доменную модель
func (c *Cart) DomainItems() []domain.CartItem {
	items := make([]domain.CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, domain.CartItem{
			ProductID:       item.ProductID,
			Name:            item.Name,
			Quantity:        item.Quantity,
			UnitPrice:       item.Price,
			PreparationTime: item.PreparationTime,
		})
	}
	return items
}
