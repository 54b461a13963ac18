package get_delivery_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	cartClient "github.com/m04kA/SMC-BakeryService/internal/integrations/cartservice"
)

// UseCase use case для построения календаря выбора даты доставки
type UseCase struct {
	cartClient CartServiceClient
	planner    Planner
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cartClient CartServiceClient, planner Planner, logger Logger) *UseCase {
	return &UseCase{
		cartClient: cartClient,
		planner:    planner,
		logger:     logger,
	}
}

// Execute выполняет use case получения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDeliveryCalendar: month=%q", req.Month)

	// 1. Определяем месяц
	month, err := uc.parseMonth(req.Month)
	if err != nil {
		uc.logger.Warn("GetDeliveryCalendar: %v", err)
		return nil, err
	}

	if req.CartID != nil && *req.CartID == "" {
		return nil, fmt.Errorf("%w: cartId must not be empty", ErrInvalidInput)
	}

	// 2. Получаем позиции корзины
	items, err := uc.resolveItems(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Строим сетку
	prepHours := uc.planner.PreparationHours(items)
	resp := &Response{
		Month:            month,
		PreparationHours: prepHours,
		EarliestDate:     uc.planner.EarliestOfferableDate(prepHours),
		Days:             uc.planner.CalendarDays(month, prepHours),
	}
	if latest, ok := uc.planner.LatestOfferableDate(); ok {
		resp.LatestDate = &latest
	}

	uc.logger.Info("GetDeliveryCalendar: month=%s, prep=%dh, %d days",
		month.Format(domain.MonthFormat), prepHours, len(resp.Days))

	return resp, nil
}

func (uc *UseCase) parseMonth(value string) (time.Time, error) {
	if value == "" {
		today := uc.planner.Today()
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, uc.planner.Location()), nil
	}

	month, err := time.ParseInLocation(domain.MonthFormat, value, uc.planner.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected YYYY-MM, got %q", ErrInvalidMonth, value)
	}
	return month, nil
}

// resolveItems возвращает позиции из сервиса корзины или из запроса
func (uc *UseCase) resolveItems(ctx context.Context, req *Request) ([]domain.CartItem, error) {
	if req.CartID == nil {
		return req.Items, nil
	}

	cart, err := uc.cartClient.GetCart(ctx, *req.CartID)
	if err != nil {
		if errors.Is(err, cartClient.ErrCartNotFound) {
			uc.logger.Warn("GetDeliveryCalendar: cart id=%s not found", *req.CartID)
			return nil, ErrCartNotFound
		}
		uc.logger.Error("GetDeliveryCalendar: failed to get cart id=%s: %v", *req.CartID, err)
		return nil, fmt.Errorf("%w: failed to get cart: %v", ErrInternal, err)
	}

	return cart.DomainItems(), nil
}
