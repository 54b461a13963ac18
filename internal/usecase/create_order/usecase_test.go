package create_order

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	deliveryTypeRepo "github.com/m04kA/SMC-BakeryService/internal/infra/storage/deliverytype"
	orderRepo "github.com/m04kA/SMC-BakeryService/internal/infra/storage/order"
	"github.com/m04kA/SMC-BakeryService/internal/integrations/cartservice"
	"github.com/m04kA/SMC-BakeryService/internal/service/delivery"
	"github.com/m04kA/SMC-BakeryService/pkg/logger"
	"github.com/m04kA/SMC-BakeryService/pkg/ptr"
)

const userID = int64(42)

type fakeOrderRepo struct {
	created []*domain.Order
	err     error
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	order.ID = int64(len(f.created) + 1)
	order.CreatedAt = time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	f.created = append(f.created, order)
	return order, nil
}

type fakeDeliveryTypeRepo struct{}

func (fakeDeliveryTypeRepo) GetByID(_ context.Context, id int64) (*domain.DeliveryType, error) {
	switch id {
	case 1:
		return &domain.DeliveryType{ID: 1, Name: "Standard", Price: decimal.RequireFromString("5.00"), TimeSlots: []domain.TimeSlot{
			{Time: "11 AM - 1 PM"}, {Time: "7 PM - 9 PM"},
		}}, nil
	case 2:
		return &domain.DeliveryType{ID: 2, Name: "Midnight", Price: decimal.RequireFromString("12.50"), TimeSlots: []domain.TimeSlot{
			{Time: "9 PM - 11 PM"},
		}}, nil
	case 99:
		return nil, errors.New("connection reset")
	default:
		return nil, deliveryTypeRepo.ErrDeliveryTypeNotFound
	}
}

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

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedCode string

func (c fixedCode) Generate() string { return string(c) }

type countingMetrics map[string]int

func (m countingMetrics) RecordOrderCreated(deliveryType string) { m[deliveryType]++ }

func carts() *fakeCartClient {
	return &fakeCartClient{carts: map[string]*cartservice.Cart{
		"cart-1": {ID: "cart-1", UserID: userID, Items: []cartservice.CartItem{
			{ProductID: 1, Name: "Sourdough", Quantity: 2, Price: decimal.RequireFromString("4.25"), PreparationTime: "4-6 hours"},
			{ProductID: 2, Name: "Croissant", Quantity: 3, Price: decimal.RequireFromString("2.00"), PreparationTime: "2 hours"},
		}},
		"empty":   {ID: "empty", UserID: userID},
		"foreign": {ID: "foreign", UserID: 7, Items: []cartservice.CartItem{{ProductID: 1, Quantity: 1}}},
		"bad-qty": {ID: "bad-qty", UserID: userID, Items: []cartservice.CartItem{{ProductID: 1, Quantity: 0}}},
	}}
}

func newUseCase(now time.Time, repo *fakeOrderRepo, m countingMetrics) *UseCase {
	settings := domain.DefaultDeliverySettings()
	settings.Location = time.UTC
	settings.AdvanceOrderDays = 14
	planner := delivery.NewPlannerWithTimeProvider(settings, &delivery.FixedTimeProvider{Time: now})

	uc := NewUseCase(repo, fakeDeliveryTypeRepo{}, carts(), planner, inlineTx{}, m, logger.NewNop())
	uc.trackingCodes = fixedCode("BK-TEST0001")
	return uc
}

func today() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		UserID:         userID,
		CartID:         "cart-1",
		CustomerName:   "Anna",
		Phone:          "+7 900 000-00-00",
		Address:        "Main st. 1",
		DeliveryDate:   today(),
		DeliveryTypeID: 2,
		TimeSlot:       "9 PM - 11 PM",
		Notes:          ptr.Ptr("ring twice"),
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &fakeOrderRepo{}
	m := countingMetrics{}
	// 14:00 + 6h + 15m = 20:15, окно 21:00 успевает
	uc := newUseCase(time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC), repo, m)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "BK-TEST0001", resp.TrackingCode)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Midnight", resp.DeliveryTypeName)
	assert.Equal(t, 6, resp.PreparationHours)
	assert.Equal(t, "14.50", resp.ItemsTotal.StringFixed(2))
	assert.Equal(t, "12.50", resp.DeliveryPrice.StringFixed(2))
	assert.Equal(t, "27.00", resp.Total.StringFixed(2))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Sourdough", resp.Items[0].Name)

	require.Len(t, repo.created, 1)
	assert.Equal(t, 1, m["Midnight"])
}

func TestUseCase_Execute_Errors(t *testing.T) {
	afternoon := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 10, 15, 16, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		now     time.Time
		modify  func(r *Request)
		wantErr error
	}{
		{name: "missing name", now: afternoon, modify: func(r *Request) { r.CustomerName = " " }, wantErr: ErrInvalidInput},
		{name: "bad slot label", now: afternoon, modify: func(r *Request) { r.TimeSlot = "whenever" }, wantErr: ErrInvalidInput},
		{name: "notes too long", now: afternoon, modify: func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1)) }, wantErr: ErrInvalidInput},
		{name: "cart not found", now: afternoon, modify: func(r *Request) { r.CartID = "missing" }, wantErr: ErrCartNotFound},
		{name: "empty cart", now: afternoon, modify: func(r *Request) { r.CartID = "empty" }, wantErr: ErrCartEmpty},
		{name: "foreign cart", now: afternoon, modify: func(r *Request) { r.CartID = "foreign" }, wantErr: ErrCartOwnership},
		{name: "bad quantity", now: afternoon, modify: func(r *Request) { r.CartID = "bad-qty" }, wantErr: ErrInvalidInput},
		{name: "yesterday", now: afternoon, modify: func(r *Request) { r.DeliveryDate = today().AddDate(0, 0, -1) }, wantErr: ErrDateInPast},
		{name: "beyond window", now: afternoon, modify: func(r *Request) { r.DeliveryDate = today().AddDate(0, 0, 15) }, wantErr: ErrDateTooFarInFuture},
		{name: "today after cutoff", now: evening, wantErr: ErrDateNotOfferable},
		{name: "unknown delivery type", now: afternoon, modify: func(r *Request) { r.DeliveryTypeID = 5 }, wantErr: ErrDeliveryTypeNotFound},
		{name: "repository failure", now: afternoon, modify: func(r *Request) { r.DeliveryTypeID = 99 }, wantErr: ErrInternal},
		{name: "slot of another type", now: afternoon, modify: func(r *Request) { r.TimeSlot = "3 PM - 5 PM" }, wantErr: ErrInvalidTimeSlot},
		{name: "slot too early today", now: afternoon, modify: func(r *Request) {
			r.DeliveryTypeID = 1
			r.TimeSlot = "7 PM - 9 PM"
		}, wantErr: ErrSlotNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeOrderRepo{}
			uc := newUseCase(tt.now, repo, countingMetrics{})

			req := validRequest()
			if tt.modify != nil {
				tt.modify(req)
			}

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.created)
		})
	}
}

func TestUseCase_Execute_TomorrowAnySlot(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc := newUseCase(time.Date(2025, 10, 15, 20, 0, 0, 0, time.UTC), repo, countingMetrics{})

	req := validRequest()
	req.DeliveryDate = today().AddDate(0, 0, 1)
	req.DeliveryTypeID = 1
	req.TimeSlot = "11 AM - 1 PM"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "11 AM - 1 PM", resp.TimeSlot)
}

func TestUseCase_Execute_DuplicateTrackingCode(t *testing.T) {
	repo := &fakeOrderRepo{err: orderRepo.ErrDuplicateTrackingCode}
	uc := newUseCase(time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC), repo, countingMetrics{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUUIDTrackingCodeGenerator(t *testing.T) {
	gen := UUIDTrackingCodeGenerator{}

	a, b := gen.Generate(), gen.Generate()
	assert.True(t, strings.HasPrefix(a, trackingCodePrefix))
	assert.Len(t, a, len(trackingCodePrefix)+12)
	assert.Equal(t, strings.ToUpper(a), a)
	assert.NotEqual(t, a, b)
}
