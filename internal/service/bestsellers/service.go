package bestsellers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	productRepo "github.com/m04kA/SMC-BakeryService/internal/infra/storage/product"
	"github.com/m04kA/SMC-BakeryService/internal/service/bestsellers/models"
)

// Service сервис управления хитами продаж
// Любое изменение списка выполняется в одной сериализуемой транзакции и заканчивается перенумерацией 1..n
type Service struct {
	repo      ProductRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса хитов продаж
func NewService(repo ProductRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// List возвращает хиты продаж в порядке ранга
func (s *Service) List(ctx context.Context) (*models.BestsellerListResponse, error) {
	products, err := s.repo.ListBestsellers(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProducts(products), nil
}

// Add помечает товар хитом и ставит его на позицию rank (nil = в конец)
// Если товар уже хит, он перемещается на новую позицию
func (s *Service) Add(ctx context.Context, productID int64, rank *int) (*models.BestsellerListResponse, error) {
	s.logger.Info("Add: product=%d, rank=%v", productID, rank)

	if rank != nil && *rank < 1 {
		return nil, fmt.Errorf("%w: rank must be positive", ErrInvalidInput)
	}

	var result []*domain.Product

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Проверяем существование товара
		product, err := s.getProduct(txCtx, productID)
		if err != nil {
			return err
		}

		// 2. Текущий список хитов без добавляемого товара
		current, err := s.listBestsellers(txCtx)
		if err != nil {
			return err
		}
		ordered, _ := without(current, productID)

		// 3. Помечаем товар, ранг проставит перенумерация
		if !product.IsBestseller {
			if err := s.repo.SetBestseller(txCtx, productID, true, nil); err != nil {
				return fmt.Errorf("%w: Add - set bestseller: %v", ErrInternal, err)
			}
		}
		product.IsBestseller = true
		product.BestsellerRank = nil

		position := len(ordered)
		if rank != nil && *rank-1 < position {
			position = *rank - 1
		}
		ordered = insertAt(ordered, position, product)

		// 4. Перенумеровываем
		if err := s.applyRanks(txCtx, ordered); err != nil {
			return err
		}

		result = ordered
		return nil
	})

	if err != nil {
		s.logError("Add", productID, err)
		return nil, err
	}

	s.logger.Info("Add: product=%d is now bestseller, %d in total", productID, len(result))
	return models.FromDomainProducts(result), nil
}

// Remove снимает пометку хита и закрывает образовавшийся пропуск в рангах
func (s *Service) Remove(ctx context.Context, productID int64) (*models.BestsellerListResponse, error) {
	s.logger.Info("Remove: product=%d", productID)

	var result []*domain.Product

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Проверяем, что товар существует и является хитом
		product, err := s.getProduct(txCtx, productID)
		if err != nil {
			return err
		}
		if !product.IsBestseller {
			return ErrNotBestseller
		}

		current, err := s.listBestsellers(txCtx)
		if err != nil {
			return err
		}

		// 2. Снимаем пометку
		if err := s.repo.SetBestseller(txCtx, productID, false, nil); err != nil {
			return fmt.Errorf("%w: Remove - unset bestseller: %v", ErrInternal, err)
		}

		// 3. Перенумеровываем оставшиеся
		ordered, _ := without(current, productID)
		if err := s.applyRanks(txCtx, ordered); err != nil {
			return err
		}

		result = ordered
		return nil
	})

	if err != nil {
		s.logError("Remove", productID, err)
		return nil, err
	}

	s.logger.Info("Remove: product=%d removed, %d bestsellers left", productID, len(result))
	return models.FromDomainProducts(result), nil
}

// Swap меняет местами два хита
func (s *Service) Swap(ctx context.Context, productA, productB int64) (*models.BestsellerListResponse, error) {
	s.logger.Info("Swap: product=%d <-> product=%d", productA, productB)

	if productA == productB {
		return nil, fmt.Errorf("%w: cannot swap product with itself", ErrInvalidInput)
	}

	var result []*domain.Product

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.listBestsellers(txCtx)
		if err != nil {
			return err
		}

		indexA, indexB := indexOf(current, productA), indexOf(current, productB)
		if indexA < 0 || indexB < 0 {
			return ErrNotBestseller
		}

		current[indexA], current[indexB] = current[indexB], current[indexA]

		if err := s.applyRanks(txCtx, current); err != nil {
			return err
		}

		result = current
		return nil
	})

	if err != nil {
		s.logError("Swap", productA, err)
		return nil, err
	}

	s.logger.Info("Swap: product=%d <-> product=%d done", productA, productB)
	return models.FromDomainProducts(result), nil
}

func (s *Service) getProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("%w: get product: %v", ErrInternal, err)
	}
	return product, nil
}

func (s *Service) listBestsellers(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.ListBestsellers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list bestsellers: %v", ErrInternal, err)
	}
	return products, nil
}

// applyRanks записывает ранги 1..n в порядке ordered, трогая только изменившиеся строки
func (s *Service) applyRanks(ctx context.Context, ordered []*domain.Product) error {
	for _, p := range domain.NormalizeRanks(ordered) {
		if err := s.repo.UpdateRank(ctx, p.ID, *p.BestsellerRank); err != nil {
			return fmt.Errorf("%w: update rank of product %d: %v", ErrInternal, p.ID, err)
		}
	}
	return nil
}

func (s *Service) logError(op string, productID int64, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound), errors.Is(err, ErrNotBestseller), errors.Is(err, ErrInvalidInput):
		s.logger.Warn("%s: product=%d: %v", op, productID, err)
	default:
		s.logger.Error("%s: product=%d: %v", op, productID, err)
	}
}

func indexOf(products []*domain.Product, id int64) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func without(products []*domain.Product, id int64) ([]*domain.Product, bool) {
	result := make([]*domain.Product, 0, len(products))
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		result = append(result, p)
	}
	return result, found
}

func insertAt(products []*domain.Product, index int, p *domain.Product) []*domain.Product {
	result := make([]*domain.Product, 0, len(products)+1)
	result = append(result, products[:index]...)
	result = append(result, p)
	return append(result, products[index:]...)
}
