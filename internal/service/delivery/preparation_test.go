package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
)

func TestParsePreparationTime(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "range takes upper bound", text: "4-6 hours", expected: 6},
		{name: "range with spaces", text: "2 - 3 hours", expected: 3},
		{name: "single value", text: "3 hours", expected: 3},
		{name: "singular hour", text: "1 hour", expected: 1},
		{name: "mixed case", text: "Ready in 5 HOURS", expected: 5},
		{name: "explicit zero", text: "0 hours", expected: 0},
		{name: "empty", text: "", expected: 4},
		{name: "whitespace", text: "   ", expected: 4},
		{name: "garbage", text: "garbage", expected: 4},
		{name: "number without unit", text: "6", expected: 4},
		{name: "minutes are not hours", text: "30 minutes", expected: 4},
		{name: "huge value is capped", text: "153722867280912931 hours", expected: domain.MaxPreparationHours},
		{name: "value beyond int range is capped", text: "99999999999999999999999 hours", expected: domain.MaxPreparationHours},
		{name: "huge range upper bound is capped", text: "1-999999999999 hours", expected: domain.MaxPreparationHours},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParsePreparationTime(tc.text, domain.DefaultPreparationHours))
		})
	}
}

func TestEffectivePreparationTime(t *testing.T) {
	testCases := []struct {
		name     string
		items    []domain.CartItem
		expected int
	}{
		{name: "empty cart falls back to default", items: nil, expected: 4},
		{
			name:     "max, not sum or average",
			items:    []domain.CartItem{{PreparationTime: "2 hours"}, {PreparationTime: "5 hours"}},
			expected: 5,
		},
		{
			name:     "range upper bound wins",
			items:    []domain.CartItem{{PreparationTime: "1 hour"}, {PreparationTime: "4-6 hours"}},
			expected: 6,
		},
		{
			name:     "missing prep time counts as default",
			items:    []domain.CartItem{{PreparationTime: "2 hours"}, {PreparationTime: ""}},
			expected: 4,
		},
		{
			name:     "fast items only",
			items:    []domain.CartItem{{PreparationTime: "1 hour"}, {PreparationTime: "2 hours"}},
			expected: 2,
		},
		{
			name:     "single zero item",
			items:    []domain.CartItem{{PreparationTime: "0 hours"}},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EffectivePreparationTime(tc.items, domain.DefaultPreparationHours))
		})
	}
}
