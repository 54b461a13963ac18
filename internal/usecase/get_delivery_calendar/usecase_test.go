package get_delivery_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	"github.com/m04kA/SMC-BakeryService/internal/integrations/cartservice"
	"github.com/m04kA/SMC-BakeryService/internal/service/delivery"
	"github.com/m04kA/SMC-BakeryService/pkg/logger"
)

type fakeCartClient struct {
	carts map[string]*cartservice.Cart
}

func (f *fakeCartClient) GetCart(_ context.Context, cartID string) (*cartservice.Cart, error) {
	cart, ok := f.carts[cartID]
	if !ok {
		return nil, cartservice.ErrCartNotFound
	}
	return cart, nil
}

func newUseCase(now time.Time, advanceDays int) *UseCase {
	settings := domain.DefaultDeliverySettings()
	settings.Location = time.UTC
	settings.AdvanceOrderDays = advanceDays
	planner := delivery.NewPlannerWithTimeProvider(settings, &delivery.FixedTimeProvider{Time: now})

	carts := &fakeCartClient{carts: map[string]*cartservice.Cart{
		"slow": {ID: "slow", Items: []cartservice.CartItem{{Quantity: 1, PreparationTime: "6 hours"}}},
	}}
	return NewUseCase(carts, planner, logger.NewNop())
}

func findDay(t *testing.T, days []domain.CalendarDay, date time.Time) domain.CalendarDay {
	t.Helper()
	for _, day := range days {
		if day.Date.Equal(date) {
			return day
		}
	}
	t.Fatalf("day %s not in grid", date.Format(domain.DateFormat))
	return domain.CalendarDay{}
}

func TestUseCase_Execute_CurrentMonth(t *testing.T) {
	// среда, 15 октября 2025
	uc := newUseCase(time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC), 0)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), resp.Month)
	assert.Zero(t, len(resp.Days)%7)
	assert.Equal(t, time.Sunday, resp.Days[0].Date.Weekday())
	assert.Equal(t, time.Saturday, resp.Days[len(resp.Days)-1].Date.Weekday())

	today := findDay(t, resp.Days, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC))
	assert.True(t, today.IsToday)
	assert.False(t, today.Disabled)

	past := findDay(t, resp.Days, time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC))
	assert.True(t, past.Disabled)

	outside := resp.Days[0]
	assert.False(t, outside.InMonth)
	assert.True(t, outside.Disabled)
}

func TestUseCase_Execute_SlowCartAfterCutoff(t *testing.T) {
	uc := newUseCase(time.Date(2025, 10, 15, 16, 0, 0, 0, time.UTC), 0)

	cartID := "slow"
	resp, err := uc.Execute(context.Background(), &Request{Month: "2025-10", CartID: &cartID})
	require.NoError(t, err)

	assert.Equal(t, 6, resp.PreparationHours)
	assert.Equal(t, time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC), resp.EarliestDate)
	assert.True(t, findDay(t, resp.Days, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)).Disabled)
	assert.False(t, findDay(t, resp.Days, time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)).Disabled)
}

func TestUseCase_Execute_AdvanceWindow(t *testing.T) {
	uc := newUseCase(time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC), 3)

	resp, err := uc.Execute(context.Background(), &Request{Month: "2025-10"})
	require.NoError(t, err)

	require.NotNil(t, resp.LatestDate)
	assert.Equal(t, time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC), *resp.LatestDate)
	assert.False(t, findDay(t, resp.Days, time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)).Disabled)
	assert.True(t, findDay(t, resp.Days, time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)).Disabled)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc := newUseCase(time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC), 0)
	missing := "missing"
	empty := ""

	_, err := uc.Execute(context.Background(), &Request{Month: "10/2025"})
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = uc.Execute(context.Background(), &Request{CartID: &empty})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CartID: &missing})
	assert.ErrorIs(t, err, ErrCartNotFound)
}
