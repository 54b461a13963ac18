package deliverytype

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	"github.com/m04kA/SMC-BakeryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BakeryService/pkg/psqlbuilder"
)

var deliveryTypeColumns = []string{
	"id",
	"name",
	"price",
	"description",
	"icon",
	"popular",
	"premium",
	"sort_order",
	"created_at",
	"updated_at",
}

// Repository репозиторий типов доставки и их временных окон
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов доставки
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает все типы доставки вместе с окнами, упорядоченные по sort_order
func (r *Repository) List(ctx context.Context) ([]*domain.DeliveryType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(deliveryTypeColumns...).
		From("delivery_types").
		OrderBy("sort_order ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	deliveryTypes := make([]*domain.DeliveryType, 0)
	byID := make(map[int64]*domain.DeliveryType)
	ids := make([]int64, 0)

	for rows.Next() {
		deliveryType, err := scanDeliveryType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		deliveryTypes = append(deliveryTypes, deliveryType)
		byID[deliveryType.ID] = deliveryType
		ids = append(ids, deliveryType.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	if len(ids) == 0 {
		return deliveryTypes, nil
	}

	slots, err := r.getTimeSlots(ctx, executor, ids)
	if err != nil {
		return nil, err
	}
	for typeID, typeSlots := range slots {
		if deliveryType, ok := byID[typeID]; ok {
			deliveryType.TimeSlots = typeSlots
		}
	}

	return deliveryTypes, nil
}

// GetByID получает тип доставки с окнами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.DeliveryType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(deliveryTypeColumns...).
		From("delivery_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	deliveryType, err := scanDeliveryType(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDeliveryTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan delivery type: %v", ErrScanRow, err)
	}

	slots, err := r.getTimeSlots(ctx, executor, []int64{id})
	if err != nil {
		return nil, err
	}
	deliveryType.TimeSlots = slots[id]

	return deliveryType, nil
}

// Update обновляет атрибуты типа доставки
func (r *Repository) Update(ctx context.Context, deliveryType *domain.DeliveryType) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("delivery_types").
		Set("price", deliveryType.Price).
		Set("description", deliveryType.Description).
		Set("popular", deliveryType.Popular).
		Set("premium", deliveryType.Premium).
		Set("sort_order", deliveryType.SortOrder).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": deliveryType.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDeliveryTypeNotFound
	}

	return nil
}

// ReplaceTimeSlots заменяет окна типа доставки на переданные (в указанном порядке)
// Вызывается внутри транзакции вместе с Update
func (r *Repository) ReplaceTimeSlots(ctx context.Context, deliveryTypeID int64, slots []domain.TimeSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("delivery_time_slots").
		Where(squirrel.Eq{"delivery_type_id": deliveryTypeID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceTimeSlots - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceTimeSlots - execute delete: %v", ErrExecQuery, err)
	}

	if len(slots) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("delivery_time_slots").
		Columns("delivery_type_id", "time_label", "sort_order")
	for i, slot := range slots {
		insertBuilder = insertBuilder.Values(deliveryTypeID, slot.Time, i+1)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceTimeSlots - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceTimeSlots - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// getTimeSlots получает окна для набора типов доставки, сгруппированные по типу
func (r *Repository) getTimeSlots(ctx context.Context, executor DBExecutor, typeIDs []int64) (map[int64][]domain.TimeSlot, error) {
	query, args, err := psqlbuilder.Select("id", "delivery_type_id", "time_label", "sort_order").
		From("delivery_time_slots").
		Where(squirrel.Expr("delivery_type_id = ANY(?)", pq.Array(typeIDs))).
		OrderBy("delivery_type_id ASC", "sort_order ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getTimeSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getTimeSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[int64][]domain.TimeSlot)
	for rows.Next() {
		var slot domain.TimeSlot
		var typeID int64
		if err := rows.Scan(&slot.ID, &typeID, &slot.Time, &slot.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: getTimeSlots - scan row: %v", ErrScanRow, err)
		}
		result[typeID] = append(result[typeID], slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getTimeSlots - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDeliveryType(row rowScanner) (*domain.DeliveryType, error) {
	var deliveryType domain.DeliveryType
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&deliveryType.ID,
		&deliveryType.Name,
		&deliveryType.Price,
		&deliveryType.Description,
		&deliveryType.Icon,
		&deliveryType.Popular,
		&deliveryType.Premium,
		&deliveryType.SortOrder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	deliveryType.CreatedAt = createdAt.Time
	deliveryType.UpdatedAt = updatedAt.Time

	return &deliveryType, nil
}
