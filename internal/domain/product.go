package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog product as far as bestseller ranking is concerned
type Product struct {
	ID              int64
	Name            string
	Category        string
	Price           decimal.Decimal
	ImageURL        string
	PreparationTime string
	IsBestseller    bool
	BestsellerRank  *int // nil, если товар не в списке хитов
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NormalizeRanks перенумеровывает хиты продаж по порядку 1..n без пропусков
// Возвращает товары, ранг которых изменился
func NormalizeRanks(products []*Product) []*Product {
	changed := make([]*Product, 0)
	for i, p := range products {
		rank := i + 1
		if p.BestsellerRank == nil || *p.BestsellerRank != rank {
			p.BestsellerRank = &rank
			changed = append(changed, p)
		}
	}
	return changed
}
