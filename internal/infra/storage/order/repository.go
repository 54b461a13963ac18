package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	"github.com/m04kA/SMC-BakeryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BakeryService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var orderColumns = []string{
	"id",
	"tracking_code",
	"user_id",
	"customer_name",
	"phone",
	"address",
	"delivery_date",
	"delivery_type_id",
	"delivery_type_name",
	"time_slot",
	"delivery_price",
	"preparation_hours",
	"items",
	"items_total",
	"total",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заказами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый заказ
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncodeItems, err)
	}

	query, args, err := psqlbuilder.Insert("orders").
		Columns(
			"tracking_code",
			"user_id",
			"customer_name",
			"phone",
			"address",
			"delivery_date",
			"delivery_type_id",
			"delivery_type_name",
			"time_slot",
			"delivery_price",
			"preparation_hours",
			"items",
			"items_total",
			"total",
			"status",
			"notes",
		).
		Values(
			order.TrackingCode,
			order.UserID,
			order.CustomerName,
			order.Phone,
			order.Address,
			order.DeliveryDate,
			order.DeliveryTypeID,
			order.DeliveryTypeName,
			order.TimeSlot,
			order.DeliveryPrice,
			order.PreparationHours,
			items,
			order.ItemsTotal,
			order.Total,
			order.Status,
			order.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&order.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateTrackingCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	return order, nil
}

// GetByID получает заказ по ID
// Внутри транзакции строка блокируется (FOR UPDATE) для последующей смены статуса
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	order, err := scanOrder(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan order: %v", ErrScanRow, err)
	}

	return order, nil
}

// GetByTrackingCode получает заказ по публичному коду отслеживания
func (r *Repository) GetByTrackingCode(ctx context.Context, trackingCode string) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"tracking_code": trackingCode}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTrackingCode - build select query: %v", ErrBuildQuery, err)
	}

	order, err := scanOrder(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTrackingCode - scan order: %v", ErrScanRow, err)
	}

	return order, nil
}

// List получает заказы с фильтрацией по статусу, типу доставки и периоду доставки
// Без явного статуса и IncludeInactive возвращаются только заказы в работе
func (r *Repository) List(ctx context.Context, filter domain.OrdersFilter) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(orderColumns...).From("orders")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"delivery_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"delivery_date": *filter.EndDate})
	}
	if filter.DeliveryTypeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"delivery_type_id": *filter.DeliveryTypeID})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatuses()})
	}

	selectBuilder = selectBuilder.OrderBy("delivery_date ASC", "created_at ASC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(filter.Offset)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return orders, nil
}

// UpdateStatus обновляет статус заказа
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// Cancel отменяет заказ с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Cancel", query, args)
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
		return ErrOrderNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var items []byte
	var cancelledAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&order.ID,
		&order.TrackingCode,
		&order.UserID,
		&order.CustomerName,
		&order.Phone,
		&order.Address,
		&order.DeliveryDate,
		&order.DeliveryTypeID,
		&order.DeliveryTypeName,
		&order.TimeSlot,
		&order.DeliveryPrice,
		&order.PreparationHours,
		&items,
		&order.ItemsTotal,
		&order.Total,
		&order.Status,
		&order.Notes,
		&order.CancellationReason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 {
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
	}

	if cancelledAt.Valid {
		order.CancelledAt = &cancelledAt.Time
	}
	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	return &order, nil
}

// inactiveStatuses завершенные статусы для фильтра "только активные"
func inactiveStatuses() []string {
	result := make([]string, len(domain.InactiveStatuses))
	for i, status := range domain.InactiveStatuses {
		result[i] = string(status)
	}
	return result
}
