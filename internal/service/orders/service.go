package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	orderRepo "github.com/m04kA/SMC-BakeryService/internal/infra/storage/order"
	"github.com/m04kA/SMC-BakeryService/internal/service/orders/models"
)

const bakeryCancellationReason = "cancelled by bakery"

// Service сервис для работы с оформленными заказами
type Service struct {
	orderRepo OrderRepository
	admins    AdminChecker
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(
	orderRepo OrderRepository,
	admins AdminChecker,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		orderRepo: orderRepo,
		admins:    admins,
		txManager: txManager,
		logger:    logger,
	}
}

// Track возвращает публичный статус заказа по коду отслеживания
func (s *Service) Track(ctx context.Context, trackingCode string) (*models.TrackingResponse, error) {
	trackingCode = strings.TrimSpace(trackingCode)
	if trackingCode == "" {
		return nil, fmt.Errorf("%w: tracking code is required", ErrInvalidInput)
	}

	order, err := s.orderRepo.GetByTrackingCode(ctx, trackingCode)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("Track: order with tracking code=%s not found", trackingCode)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("Track: repository error for tracking code=%s: %v", trackingCode, err)
		return nil, fmt.Errorf("%w: Track - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTracking(order), nil
}

// GetByID получает заказ по ID
// Пользователь видит только свои заказы, администратор пекарни видит любые
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.OrderResponse, error) {
	s.logger.Info("GetByID: fetching order id=%d for user=%d", id, userID)

	order, err := s.getOrder(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID && !s.admins.IsAdmin(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to order id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainOrder(order), nil
}

// List получает заказы для админки
// Без фильтра по статусу возвращаются только заказы в работе
func (s *Service) List(ctx context.Context, req *models.ListOrdersRequest) (*models.OrderListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d orders", len(orders))
	return models.FromDomainOrderList(orders), nil
}

// UpdateStatus переводит заказ в следующий статус (только для администраторов)
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.OrderResponse, error) {
	s.logger.Info("UpdateStatus: order id=%d -> %s", id, req.Status)

	// 1. Валидируем статус
	status, err := models.ToDomainOrderStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var updated *domain.Order

	// 2. Проверяем переход и обновляем под блокировкой строки
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		order, err := s.getOrder(txCtx, "UpdateStatus", id)
		if err != nil {
			return err
		}

		if !order.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
		}

		if status == domain.StatusCancelled {
			reason := req.CancellationReason
			if reason == "" {
				reason = bakeryCancellationReason
			}
			if err := s.cancel(txCtx, order, reason); err != nil {
				return err
			}
		} else {
			if err := s.orderRepo.UpdateStatus(txCtx, id, status); err != nil {
				return s.mapRepoError("UpdateStatus", err)
			}
			order.Status = status
		}

		updated = order
		return nil
	})

	if err != nil {
		s.logResult("UpdateStatus", id, err)
		return nil, err
	}

	s.logger.Info("UpdateStatus: order id=%d is now %s", id, updated.Status)
	return models.FromDomainOrder(updated), nil
}

// Cancel отменяет заказ
// Покупатель может отменить свой заказ, пока он не ушел в выпечку; администратор в тех же статусах отменяет любой
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelOrderRequest) (*models.OrderResponse, error) {
	s.logger.Info("Cancel: cancelling order id=%d by user=%d", id, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReason {
		return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	var cancelled *domain.Order

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Загружаем заказ под блокировкой
		order, err := s.getOrder(txCtx, "Cancel", id)
		if err != nil {
			return err
		}

		// 2. Проверяем права
		if order.UserID != req.UserID && !s.admins.IsAdmin(req.UserID) {
			return ErrAccessDenied
		}

		// 3. Проверяем статус
		if !order.CanBeCancelled() {
			return fmt.Errorf("%w: order is %s", ErrCannotCancel, order.Status)
		}

		// 4. Отменяем
		if err := s.cancel(txCtx, order, req.CancellationReason); err != nil {
			return err
		}

		cancelled = order
		return nil
	})

	if err != nil {
		s.logResult("Cancel", id, err)
		return nil, err
	}

	s.logger.Info("Cancel: order id=%d cancelled", id)
	return models.FromDomainOrder(cancelled), nil
}

func (s *Service) cancel(ctx context.Context, order *domain.Order, reason string) error {
	if err := s.orderRepo.Cancel(ctx, order.ID, reason); err != nil {
		return s.mapRepoError("Cancel", err)
	}

	order.Status = domain.StatusCancelled
	if reason != "" {
		order.CancellationReason = &reason
	}
	return nil
}

func (s *Service) getOrder(ctx context.Context, op string, id int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("%s: order id=%d not found", op, id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("%s: repository error for order id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return order, nil
}

func (s *Service) mapRepoError(op string, err error) error {
	if errors.Is(err, orderRepo.ErrOrderNotFound) {
		return ErrOrderNotFound
	}
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func (s *Service) logResult(op string, id int64, err error) {
	switch {
	case errors.Is(err, ErrInternal):
		s.logger.Error("%s: order id=%d: %v", op, id, err)
	default:
		s.logger.Warn("%s: order id=%d: %v", op, id, err)
	}
}
