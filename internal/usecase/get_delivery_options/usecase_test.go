package get_delivery_options

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	"github.com/m04kA/SMC-BakeryService/internal/integrations/cartservice"
	"github.com/m04kA/SMC-BakeryService/internal/service/delivery"
	"github.com/m04kA/SMC-BakeryService/pkg/logger"
)

type fakeCatalog struct {
	types []*domain.DeliveryType
	err   error
}

func (f *fakeCatalog) DeliveryTypes(_ context.Context) ([]*domain.DeliveryType, error) {
	return f.types, f.err
}

type fakeCartClient struct {
	carts map[string]*cartservice.Cart
	err   error
}

func (f *fakeCartClient) GetCart(_ context.Context, cartID string) (*cartservice.Cart, error) {
	if f.err != nil {
		return nil, f.err
	}
	cart, ok := f.carts[cartID]
	if !ok {
		return nil, cartservice.ErrCartNotFound
	}
	return cart, nil
}

type countingMetrics struct {
	offered, refused int
}

func (m *countingMetrics) RecordSameDayDecision(offered bool) {
	if offered {
		m.offered++
	} else {
		m.refused++
	}
}

func catalog() *fakeCatalog {
	return &fakeCatalog{types: []*domain.DeliveryType{
		{ID: 1, Name: "Standard", TimeSlots: []domain.TimeSlot{
			{Time: "11 AM - 1 PM"}, {Time: "3 PM - 5 PM"}, {Time: "7 PM - 9 PM"},
		}},
		{ID: 2, Name: "Midnight", TimeSlots: []domain.TimeSlot{
			{Time: "9 PM - 11 PM"}, {Time: "11 PM - 12 AM"},
		}},
		{ID: 3, Name: "Empty"},
	}}
}

func newUseCase(now time.Time, advanceDays int, carts *fakeCartClient, m *countingMetrics) *UseCase {
	settings := domain.DefaultDeliverySettings()
	settings.Location = time.UTC
	settings.AdvanceOrderDays = advanceDays
	planner := delivery.NewPlannerWithTimeProvider(settings, &delivery.FixedTimeProvider{Time: now})
	return NewUseCase(catalog(), carts, planner, m, logger.NewNop())
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 10, 15, hour, minute, 0, 0, time.UTC)
}

func TestUseCase_Execute_TodayFiltersSlots(t *testing.T) {
	m := &countingMetrics{}
	uc := newUseCase(at(14, 0), 0, &fakeCartClient{}, m)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:  at(0, 0),
		Items: []domain.CartItem{{Quantity: 1, PreparationTime: "4-6 hours"}, {Quantity: 2, PreparationTime: "3 hours"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 6, resp.PreparationHours)
	require.NotNil(t, resp.MinimumDeliverableTime)
	assert.Equal(t, "20:15", *resp.MinimumDeliverableTime)
	assert.True(t, resp.OfferToday)
	assert.Equal(t, at(0, 0), resp.EarliestDate)
	assert.Nil(t, resp.LatestDate)
	assert.True(t, resp.AnyAvailable)

	require.Len(t, resp.DeliveryTypes, 3)
	assert.False(t, resp.DeliveryTypes[0].Available)
	assert.True(t, resp.DeliveryTypes[1].Available)
	assert.True(t, resp.DeliveryTypes[1].Slots[0].Available)
	assert.False(t, resp.DeliveryTypes[2].Available)
	assert.Equal(t, 1, m.offered)
}

func TestUseCase_Execute_AfterCutoff(t *testing.T) {
	m := &countingMetrics{}
	uc := newUseCase(at(16, 0), 0, &fakeCartClient{}, m)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:  at(0, 0),
		Items: []domain.CartItem{{Quantity: 1, PreparationTime: "6 hours"}},
	})
	require.NoError(t, err)

	assert.False(t, resp.OfferToday)
	assert.Equal(t, at(0, 0).AddDate(0, 0, 1), resp.EarliestDate)
	assert.False(t, resp.AnyAvailable)
	for _, option := range resp.DeliveryTypes {
		assert.False(t, option.Available, option.DeliveryType.Name)
	}
	assert.Equal(t, 1, m.refused)
}

func TestUseCase_Execute_MinimumPastMidnight(t *testing.T) {
	uc := newUseCase(at(22, 0), 0, &fakeCartClient{}, &countingMetrics{})

	resp, err := uc.Execute(context.Background(), &Request{Date: at(0, 0).AddDate(0, 0, 1)})
	require.NoError(t, err)

	assert.Nil(t, resp.MinimumDeliverableTime)
	assert.Equal(t, domain.DefaultPreparationHours, resp.PreparationHours)
	assert.True(t, resp.AnyAvailable)
}

func TestUseCase_Execute_CartFromService(t *testing.T) {
	carts := &fakeCartClient{carts: map[string]*cartservice.Cart{
		"cart-1": {ID: "cart-1", Items: []cartservice.CartItem{{ProductID: 1, Quantity: 1, PreparationTime: "8 hours"}}},
	}}
	uc := newUseCase(at(9, 0), 0, carts, &countingMetrics{})

	cartID := "cart-1"
	resp, err := uc.Execute(context.Background(), &Request{Date: at(0, 0), CartID: &cartID})
	require.NoError(t, err)
	assert.Equal(t, 8, resp.PreparationHours)
	assert.Equal(t, "17:15", *resp.MinimumDeliverableTime)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	missing := "missing"
	empty := ""

	tests := []struct {
		name    string
		carts   *fakeCartClient
		advance int
		req     *Request
		wantErr error
	}{
		{name: "no date", carts: &fakeCartClient{}, req: &Request{}, wantErr: ErrInvalidInput},
		{name: "empty cart id", carts: &fakeCartClient{}, req: &Request{Date: at(0, 0), CartID: &empty}, wantErr: ErrInvalidInput},
		{name: "bad quantity", carts: &fakeCartClient{}, req: &Request{Date: at(0, 0), Items: []domain.CartItem{{Quantity: 0}}}, wantErr: ErrInvalidInput},
		{name: "yesterday", carts: &fakeCartClient{}, req: &Request{Date: at(0, 0).AddDate(0, 0, -1)}, wantErr: ErrDateInPast},
		{name: "beyond advance window", carts: &fakeCartClient{}, advance: 7, req: &Request{Date: at(0, 0).AddDate(0, 0, 8)}, wantErr: ErrDateTooFarInFuture},
		{name: "cart not found", carts: &fakeCartClient{}, req: &Request{Date: at(0, 0), CartID: &missing}, wantErr: ErrCartNotFound},
		{name: "cart service down", carts: &fakeCartClient{err: errors.New("timeout")}, req: &Request{Date: at(0, 0), CartID: &missing}, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(at(10, 0), tt.advance, tt.carts, &countingMetrics{})
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_CatalogError(t *testing.T) {
	settings := domain.DefaultDeliverySettings()
	settings.Location = time.UTC
	planner := delivery.NewPlannerWithTimeProvider(settings, &delivery.FixedTimeProvider{Time: at(10, 0)})
	uc := NewUseCase(&fakeCatalog{err: errors.New("db down")}, &fakeCartClient{}, planner, nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Date: at(0, 0)})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", *formatMinutes(0))
	assert.Equal(t, "20:15", *formatMinutes(1215))
	assert.Equal(t, "23:59", *formatMinutes(1439))
	assert.Nil(t, formatMinutes(1440))
	assert.Nil(t, formatMinutes(1600))
}
