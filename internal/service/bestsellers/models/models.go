package models

import (
	"github.com/m04kA/SMC-BakeryService/internal/domain"
)

// Request модели

// AddRequest добавление товара в хиты
// Rank == nil ставит товар в конец списка
type AddRequest struct {
	Rank *int `json:"rank,omitempty" validate:"omitempty,min=1"`
}

// SwapRequest обмен местами двух хитов
type SwapRequest struct {
	ProductA int64 `json:"productA" validate:"required,gt=0"`
	ProductB int64 `json:"productB" validate:"required,gt=0,nefield=ProductA"`
}

// Response модели

// BestsellerResponse хит продаж
type BestsellerResponse struct {
	ProductID       int64  `json:"productId"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Price           string `json:"price"`
	ImageURL        string `json:"imageUrl,omitempty"`
	PreparationTime string `json:"preparationTime,omitempty"`
	Rank            int    `json:"rank"`
}

// BestsellerListResponse ответ со списком хитов
type BestsellerListResponse struct {
	Bestsellers []BestsellerResponse `json:"bestsellers"`
}

// FromDomainProducts конвертирует список хитов в DTO
func FromDomainProducts(products []*domain.Product) *BestsellerListResponse {
	resp := &BestsellerListResponse{
		Bestsellers: make([]BestsellerResponse, 0, len(products)),
	}

	for _, p := range products {
		rank := 0
		if p.BestsellerRank != nil {
			rank = *p.BestsellerRank
		}
		resp.Bestsellers = append(resp.Bestsellers, BestsellerResponse{
			ProductID:       p.ID,
			Name:            p.Name,
			Category:        p.Category,
			Price:           p.Price.StringFixed(2),
			ImageURL:        p.ImageURL,
			PreparationTime: p.PreparationTime,
			Rank:            rank,
		})
	}

	return resp
}
