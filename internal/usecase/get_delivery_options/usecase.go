package get_delivery_options

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	cartClient "github.com/m04kA/SMC-BakeryService/internal/integrations/cartservice"
)

// UseCase use case для расчета вариантов доставки на дату
type UseCase struct {
	catalog    DeliveryCatalog
	cartClient CartServiceClient
	planner    Planner
	metrics    MetricsRecorder
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	catalog DeliveryCatalog,
	cartClient CartServiceClient,
	planner Planner,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:    catalog,
		cartClient: cartClient,
		planner:    planner,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute выполняет use case получения вариантов доставки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDeliveryOptions: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDeliveryOptions: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем дату
	if err := validateDate(req.Date, uc.planner); err != nil {
		uc.logger.Warn("GetDeliveryOptions: date %s rejected: %v", req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	// 3. Получаем позиции корзины
	items, err := uc.resolveItems(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Считаем время приготовления и минимальное время доставки
	prepHours := uc.planner.PreparationHours(items)
	minInstant := uc.planner.MinimumDeliverableInstant(prepHours)
	offerToday := uc.planner.ShouldOfferToday(prepHours)
	if uc.metrics != nil {
		uc.metrics.RecordSameDayDecision(offerToday)
	}

	// 5. Получаем каталог типов доставки
	deliveryTypes, err := uc.catalog.DeliveryTypes(ctx)
	if err != nil {
		uc.logger.Error("GetDeliveryOptions: failed to get delivery types: %v", err)
		return nil, fmt.Errorf("%w: failed to get delivery types: %v", ErrInternal, err)
	}

	// 6. Размечаем доступность типов и окон
	options := uc.planner.FilterDeliveryTypes(deliveryTypes, req.Date, prepHours)

	// После отсечки сегодняшний день не предлагается, даже если какое-то окно формально успевает
	if uc.planner.IsToday(req.Date) && !offerToday {
		markUnavailable(options)
	}

	anyAvailable := false
	for _, option := range options {
		if option.Available {
			anyAvailable = true
			break
		}
	}

	resp := &Response{
		Date:                   req.Date,
		PreparationHours:       prepHours,
		MinimumDeliverableTime: formatMinutes(minInstant),
		OfferToday:             offerToday,
		EarliestDate:           uc.planner.EarliestOfferableDate(prepHours),
		DeliveryTypes:          options,
		AnyAvailable:           anyAvailable,
	}
	if latest, ok := uc.planner.LatestOfferableDate(); ok {
		resp.LatestDate = &latest
	}

	uc.logger.Info("GetDeliveryOptions: prep=%dh, offerToday=%t, %d delivery types, anyAvailable=%t",
		prepHours, offerToday, len(options), anyAvailable)

	return resp, nil
}

// resolveItems возвращает позиции из сервиса корзины или из запроса
func (uc *UseCase) resolveItems(ctx context.Context, req *Request) ([]domain.CartItem, error) {
	if req.CartID == nil {
		return req.Items, nil
	}

	cart, err := uc.cartClient.GetCart(ctx, *req.CartID)
	if err != nil {
		if errors.Is(err, cartClient.ErrCartNotFound) {
			uc.logger.Warn("GetDeliveryOptions: cart id=%s not found", *req.CartID)
			return nil, ErrCartNotFound
		}
		uc.logger.Error("GetDeliveryOptions: failed to get cart id=%s: %v", *req.CartID, err)
		return nil, fmt.Errorf("%w: failed to get cart: %v", ErrInternal, err)
	}

	return cart.DomainItems(), nil
}

func markUnavailable(options []domain.DeliveryTypeAvailability) {
	for i := range options {
		options[i].Available = false
		for j := range options[i].Slots {
			options[i].Slots[j].Available = false
		}
	}
}

