package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	"github.com/m04kA/SMC-BakeryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BakeryService/pkg/psqlbuilder"
)

var productColumns = []string{
	"id",
	"name",
	"category",
	"price",
	"image_url",
	"preparation_time",
	"is_bestseller",
	"bestseller_rank",
	"created_at",
	"updated_at",
}

// Repository репозиторий товаров (в части хитов продаж)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория товаров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListBestsellers получает хиты продаж в порядке ранга
// Внутри транзакции строки блокируются, чтобы перенумерация не пересеклась с параллельной
func (r *Repository) ListBestsellers(ctx context.Context) ([]*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"is_bestseller": true}).
		OrderBy("bestseller_rank ASC NULLS LAST", "id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBestsellers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBestsellers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBestsellers - scan row: %v", ErrScanRow, err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBestsellers - rows error: %v", ErrScanRow, err)
	}

	return products, nil
}

// GetByID получает товар по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	product, err := scanProduct(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan product: %v", ErrScanRow, err)
	}

	return product, nil
}

// SetBestseller помечает товар хитом (с рангом) или снимает пометку (rank = nil)
func (r *Repository) SetBestseller(ctx context.Context, id int64, isBestseller bool, rank *int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("products").
		Set("is_bestseller", isBestseller).
		Set("bestseller_rank", rank).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetBestseller - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "SetBestseller", query, args)
}

// UpdateRank меняет только ранг хита
func (r *Repository) UpdateRank(ctx context.Context, id int64, rank int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("products").
		Set("bestseller_rank", rank).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRank - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateRank", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var product domain.Product
	var rank sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.ImageURL,
		&product.PreparationTime,
		&product.IsBestseller,
		&rank,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rank.Valid {
		value := int(rank.Int64)
		product.BestsellerRank = &value
	}
	product.CreatedAt = createdAt.Time
	product.UpdatedAt = updatedAt.Time

	return &product, nil
}
