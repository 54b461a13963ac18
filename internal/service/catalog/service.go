package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	deliveryTypesCache "github.com/m04kA/SMC-BakeryService/internal/infra/cache/deliverytypes"
	deliveryTypeRepo "github.com/m04kA/SMC-BakeryService/internal/infra/storage/deliverytype"
	"github.com/m04kA/SMC-BakeryService/internal/service/catalog/models"
	"github.com/m04kA/SMC-BakeryService/pkg/types"
)

// Service сервис каталога типов доставки
type Service struct {
	repo      DeliveryTypeRepository
	cache     DeliveryTypeCache
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
// cache может быть nil, тогда каталог всегда читается из БД
func NewService(
	repo DeliveryTypeRepository,
	cache DeliveryTypeCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		txManager: txManager,
		logger:    logger,
	}
}

// DeliveryTypes возвращает каталог типов доставки с окнами
// Ошибка кэша не ломает запрос: читаем из БД
func (s *Service) DeliveryTypes(ctx context.Context) ([]*domain.DeliveryType, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, deliveryTypesCache.ErrCacheMiss) {
			s.logger.Warn("DeliveryTypes: cache unavailable, falling back to database: %v", err)
		}
	}

	deliveryTypes, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("DeliveryTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: DeliveryTypes - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, deliveryTypes); err != nil {
			s.logger.Warn("DeliveryTypes: failed to warm cache: %v", err)
		}
	}

	return deliveryTypes, nil
}

// List публичный список типов доставки для витрины
func (s *Service) List(ctx context.Context) (*models.DeliveryTypeListResponse, error) {
	deliveryTypes, err := s.DeliveryTypes(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("List: returning %d delivery types", len(deliveryTypes))
	return models.FromDomainDeliveryTypeList(deliveryTypes), nil
}

// Update обновляет тип доставки и, если переданы, его окна
// Доступно только администраторам (проверяется на уровне роутера)
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateDeliveryTypeRequest) (*models.DeliveryTypeResponse, error) {
	s.logger.Info("Update: updating delivery type id=%d", id)

	// 1. Валидируем входные данные
	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.DeliveryType

	// 2. Обновляем атрибуты и окна в одной транзакции
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		deliveryType, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, deliveryTypeRepo.ErrDeliveryTypeNotFound) {
				return ErrDeliveryTypeNotFound
			}
			return fmt.Errorf("%w: Update - get delivery type: %v", ErrInternal, err)
		}

		req.ApplyTo(deliveryType)

		if err := s.repo.Update(txCtx, deliveryType); err != nil {
			if errors.Is(err, deliveryTypeRepo.ErrDeliveryTypeNotFound) {
				return ErrDeliveryTypeNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		if req.TimeSlots != nil {
			if err := s.repo.ReplaceTimeSlots(txCtx, id, deliveryType.TimeSlots); err != nil {
				return fmt.Errorf("%w: Update - replace time slots: %v", ErrInternal, err)
			}
		}

		updated = deliveryType
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrDeliveryTypeNotFound) {
			s.logger.Warn("Update: delivery type id=%d not found", id)
		} else {
			s.logger.Error("Update: failed to update delivery type id=%d: %v", id, err)
		}
		return nil, err
	}

	// 3. Сбрасываем кэш каталога
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("Update: failed to invalidate cache: %v", err)
		}
	}

	s.logger.Info("Update: successfully updated delivery type id=%d (%d time slots)", id, len(updated.TimeSlots))
	return models.FromDomainDeliveryType(updated), nil
}

func validateUpdateRequest(req *models.UpdateDeliveryTypeRequest) error {
	if req.Price != nil && req.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.SortOrder != nil && *req.SortOrder < 0 {
		return fmt.Errorf("%w: sortOrder must not be negative", ErrInvalidInput)
	}

	if len(req.TimeSlots) > domain.MaxDeliveryTypeTimeSlots {
		return fmt.Errorf("%w: at most %d time slots allowed", ErrInvalidInput, domain.MaxDeliveryTypeTimeSlots)
	}

	seen := make(map[string]struct{}, len(req.TimeSlots))
	for _, label := range req.TimeSlots {
		if err := types.SlotLabel(label).Validate(); err != nil {
			return fmt.Errorf("%w: time slot %q: %v", ErrInvalidInput, label, err)
		}
		if _, ok := seen[label]; ok {
			return fmt.Errorf("%w: duplicate time slot %q", ErrInvalidInput, label)
		}
		seen[label] = struct{}{}
	}

	return nil
}
