package delivery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
)

var (
	// "4-6 hours", "4 - 6 hour"
	rangeHoursPattern = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*hours?`)
	// "3 hours", "1 hour"
	singleHoursPattern = regexp.MustCompile(`(\d+)\s*hours?`)
)

// ParsePreparationTime разбирает текстовое время приготовления в часы
// Для диапазона берется верхняя граница, нераспознанный текст дает defaultHours
func ParsePreparationTime(text string, defaultHours int) int {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return defaultHours
	}

	if match := rangeHoursPattern.FindStringSubmatch(normalized); match != nil {
		return parseHours(match[2])
	}

	if match := singleHoursPattern.FindStringSubmatch(normalized); match != nil {
		return parseHours(match[1])
	}

	return defaultHours
}

// parseHours переводит цифры в часы с верхней границей MaxPreparationHours
// Слишком большое число тоже дает максимум, чтобы сегодня ничего не предлагалось
func parseHours(digits string) int {
	hours, err := strconv.Atoi(digits)
	if err != nil || hours > domain.MaxPreparationHours {
		return domain.MaxPreparationHours
	}
	return hours
}

// EffectivePreparationTime максимальное время приготовления по корзине
// Самая долгая позиция задерживает весь заказ. Пустая корзина дает defaultHours, а не 0
func EffectivePreparationTime(items []domain.CartItem, defaultHours int) int {
	if len(items) == 0 {
		return defaultHours
	}

	maxHours := 0
	for i, item := range items {
		hours := ParsePreparationTime(item.PreparationTime, defaultHours)
		if i == 0 || hours > maxHours {
			maxHours = hours
		}
	}

	return maxHours
}
