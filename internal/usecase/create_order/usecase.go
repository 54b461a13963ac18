package create_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	deliveryTypeRepo "github.com/m04kA/SMC-BakeryService/internal/infra/storage/deliverytype"
	orderRepo "github.com/m04kA/SMC-BakeryService/internal/infra/storage/order"
	cartClient "github.com/m04kA/SMC-BakeryService/internal/integrations/cartservice"
)

// UseCase use case для оформления заказа
type UseCase struct {
	orderRepo        OrderRepository
	deliveryTypeRepo DeliveryTypeRepository
	cartClient       CartServiceClient
	planner          Planner
	trackingCodes    TrackingCodeGenerator
	txManager        TransactionManager
	metrics          MetricsRecorder
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	orderRepo OrderRepository,
	deliveryTypeRepo DeliveryTypeRepository,
	cartClient CartServiceClient,
	planner Planner,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:        orderRepo,
		deliveryTypeRepo: deliveryTypeRepo,
		cartClient:       cartClient,
		planner:          planner,
		trackingCodes:    UUIDTrackingCodeGenerator{},
		txManager:        txManager,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute выполняет use case оформления заказа
// Проверка даты и окна и запись заказа идут в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOrder: user=%d, cart=%s, date=%s, deliveryType=%d, slot=%q",
		req.UserID, req.CartID, req.DeliveryDate.Format(domain.DateFormat), req.DeliveryTypeID, req.TimeSlot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корзину
	cart, err := uc.cartClient.GetCart(ctx, req.CartID)
	if err != nil {
		if errors.Is(err, cartClient.ErrCartNotFound) {
			uc.logger.Warn("CreateOrder: cart id=%s not found", req.CartID)
			return nil, ErrCartNotFound
		}
		uc.logger.Error("CreateOrder: failed to get cart id=%s: %v", req.CartID, err)
		return nil, fmt.Errorf("%w: failed to get cart: %v", ErrInternal, err)
	}

	if cart.UserID != 0 && cart.UserID != req.UserID {
		uc.logger.Warn("CreateOrder: cart id=%s belongs to user=%d, not %d", req.CartID, cart.UserID, req.UserID)
		return nil, ErrCartOwnership
	}

	cartItems := cart.DomainItems()
	if len(cartItems) == 0 {
		uc.logger.Warn("CreateOrder: cart id=%s is empty", req.CartID)
		return nil, ErrCartEmpty
	}

	// 3. Фиксируем позиции и время приготовления
	items, err := snapshotItems(cartItems)
	if err != nil {
		uc.logger.Warn("CreateOrder: invalid cart id=%s: %v", req.CartID, err)
		return nil, err
	}
	prepHours := uc.planner.PreparationHours(cartItems)

	var result *domain.Order

	// 4. Проверяем доступность и сохраняем заказ в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Дата
		if err := validateDate(req.DeliveryDate, prepHours, uc.planner); err != nil {
			uc.logger.Warn("CreateOrder: date %s rejected: %v", req.DeliveryDate.Format(domain.DateFormat), err)
			return err
		}

		// 4.2. Тип доставки
		deliveryType, err := uc.deliveryTypeRepo.GetByID(txCtx, req.DeliveryTypeID)
		if err != nil {
			if errors.Is(err, deliveryTypeRepo.ErrDeliveryTypeNotFound) {
				uc.logger.Warn("CreateOrder: delivery type id=%d not found", req.DeliveryTypeID)
				return ErrDeliveryTypeNotFound
			}
			uc.logger.Error("CreateOrder: failed to get delivery type id=%d: %v", req.DeliveryTypeID, err)
			return fmt.Errorf("%w: failed to get delivery type: %v", ErrInternal, err)
		}

		// 4.3. Окно принадлежит типу доставки
		slot, ok := deliveryType.FindTimeSlot(req.TimeSlot)
		if !ok {
			uc.logger.Warn("CreateOrder: slot %q not offered by delivery type %s", req.TimeSlot, deliveryType.Name)
			return ErrInvalidTimeSlot
		}

		// 4.4. Окно еще можно успеть
		if !uc.planner.IsSlotAvailable(slot.Time, req.DeliveryDate, prepHours) {
			uc.logger.Warn("CreateOrder: slot %q is not available on %s for prep=%dh",
				slot.Time, req.DeliveryDate.Format(domain.DateFormat), prepHours)
			return ErrSlotNotAvailable
		}

		// 4.5. Собираем заказ со снимком цен
		order := &domain.Order{
			UserID:           req.UserID,
			CustomerName:     req.CustomerName,
			Phone:            req.Phone,
			Address:          req.Address,
			DeliveryDate:     req.DeliveryDate,
			DeliveryTypeID:   deliveryType.ID,
			DeliveryTypeName: deliveryType.Name,
			TimeSlot:         slot.Time,
			DeliveryPrice:    deliveryType.Price,
			PreparationHours: prepHours,
			Items:            items,
			Status:           domain.StatusPending,
			Notes:            req.Notes,
		}
		order.RecalculateTotals()

		// 4.6. Сохраняем
		created, err := uc.create(txCtx, order)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordOrderCreated(result.DeliveryTypeName)
	}

	uc.logger.Info("CreateOrder: successfully created order id=%d, tracking=%s, total=%s",
		result.ID, result.TrackingCode, result.Total.StringFixed(2))

	return &Response{
		ID:               result.ID,
		TrackingCode:     result.TrackingCode,
		UserID:           result.UserID,
		Status:           string(result.Status),
		DeliveryDate:     result.DeliveryDate,
		DeliveryTypeID:   result.DeliveryTypeID,
		DeliveryTypeName: result.DeliveryTypeName,
		TimeSlot:         result.TimeSlot,
		PreparationHours: result.PreparationHours,
		Items:            result.Items,
		ItemsTotal:       result.ItemsTotal,
		DeliveryPrice:    result.DeliveryPrice,
		Total:            result.Total,
		Notes:            result.Notes,
		CreatedAt:        result.CreatedAt,
	}, nil
}

// create сохраняет заказ с новым кодом отслеживания
// Коллизия кода обрывает транзакцию в Postgres, поэтому повтор делает клиент
func (uc *UseCase) create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	order.TrackingCode = uc.trackingCodes.Generate()

	created, err := uc.orderRepo.Create(ctx, order)
	if err != nil {
		if errors.Is(err, orderRepo.ErrDuplicateTrackingCode) {
			uc.logger.Error("CreateOrder: tracking code collision: %s", order.TrackingCode)
		} else {
			uc.logger.Error("CreateOrder: failed to create order: %v", err)
		}
		return nil, fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
	}

	return created, nil
}
