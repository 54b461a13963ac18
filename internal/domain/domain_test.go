package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from     OrderStatus
		to       OrderStatus
		expected bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusBaking, false},
		{StatusConfirmed, StatusBaking, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusBaking, StatusOutForDelivery, true},
		{StatusBaking, StatusCancelled, false},
		{StatusOutForDelivery, StatusDelivered, true},
		{StatusDelivered, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusCancelled, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			order := &Order{Status: tc.from}
			assert.Equal(t, tc.expected, order.CanTransitionTo(tc.to))
		})
	}
}

func TestOrder_RecalculateTotals(t *testing.T) {
	order := &Order{
		DeliveryPrice: decimal.RequireFromString("4.50"),
		Items: []OrderItem{
			{Name: "Sourdough", Quantity: 2, UnitPrice: decimal.RequireFromString("6.25")},
			{Name: "Croissant", Quantity: 3, UnitPrice: decimal.RequireFromString("2.10")},
		},
	}

	order.RecalculateTotals()

	assert.True(t, decimal.RequireFromString("18.80").Equal(order.ItemsTotal), order.ItemsTotal.String())
	assert.True(t, decimal.RequireFromString("23.30").Equal(order.Total), order.Total.String())
}

func TestOrder_StatusPredicates(t *testing.T) {
	assert.True(t, (&Order{Status: StatusBaking}).IsActive())
	assert.False(t, (&Order{Status: StatusDelivered}).IsActive())
	assert.True(t, (&Order{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Order{Status: StatusOutForDelivery}).CanBeCancelled())
	assert.True(t, IsValidOrderStatus("out_for_delivery"))
	assert.False(t, IsValidOrderStatus("lost"))
}

func TestNormalizeRanks(t *testing.T) {
	rank := func(v int) *int { return &v }
	products := []*Product{
		{ID: 1, BestsellerRank: rank(1)},
		{ID: 2, BestsellerRank: rank(3)},
		{ID: 3, BestsellerRank: nil},
		{ID: 4, BestsellerRank: rank(4)},
	}

	changed := NormalizeRanks(products)

	require.Len(t, changed, 2)
	assert.Equal(t, int64(2), changed[0].ID)
	assert.Equal(t, int64(3), changed[1].ID)
	for i, p := range products {
		assert.Equal(t, i+1, *p.BestsellerRank)
	}
}

func TestDeliveryType_FindTimeSlot(t *testing.T) {
	deliveryType := &DeliveryType{TimeSlots: []TimeSlot{{Time: "9 AM - 11 AM"}, {Time: "11 AM - 1 PM"}}}

	slot, ok := deliveryType.FindTimeSlot("11 AM - 1 PM")
	assert.True(t, ok)
	assert.Equal(t, "11 AM - 1 PM", slot.Time)

	_, ok = deliveryType.FindTimeSlot("1 PM - 3 PM")
	assert.False(t, ok)
	assert.True(t, deliveryType.HasTimeSlots())
	assert.False(t, (&DeliveryType{}).HasTimeSlots())
}
