package order

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
)

var errQueryCaptured = errors.New("query captured")

// recordingDB запоминает последний запрос и не ходит в БД
type recordingDB struct {
	query string
	args  []interface{}
}

func (r *recordingDB) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	r.query, r.args = query, args
	return nil, errQueryCaptured
}

func (r *recordingDB) QueryContext(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	r.query, r.args = query, args
	return nil, errQueryCaptured
}

func (r *recordingDB) QueryRowContext(_ context.Context, query string, args ...interface{}) *sql.Row {
	r.query, r.args = query, args
	return nil
}

func TestRepository_List_Filters(t *testing.T) {
	confirmed := domain.StatusConfirmed

	testCases := []struct {
		name        string
		filter      domain.OrdersFilter
		contains    []string
		notContains []string
		args        []interface{}
	}{
		{
			name:     "active only by default",
			filter:   domain.OrdersFilter{},
			contains: []string{"status NOT IN ($1,$2)"},
			args:     []interface{}{"delivered", "cancelled"},
		},
		{
			name:        "include inactive drops the status filter",
			filter:      domain.OrdersFilter{IncludeInactive: true},
			notContains: []string{"status"},
		},
		{
			name:     "explicit status wins",
			filter:   domain.OrdersFilter{Status: &confirmed},
			contains: []string{"status = $1"},
			args:     []interface{}{domain.StatusConfirmed},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := &recordingDB{}
			_, err := NewRepository(db).List(context.Background(), tc.filter)
			require.ErrorIs(t, err, ErrExecQuery)

			where := db.query
			if idx := strings.Index(where, "WHERE"); idx >= 0 {
				where = where[idx:]
			} else {
				where = ""
			}
			for _, fragment := range tc.contains {
				assert.Contains(t, where, fragment)
			}
			for _, fragment := range tc.notContains {
				assert.NotContains(t, where, fragment)
			}
			if tc.args != nil {
				assert.Equal(t, tc.args, db.args)
			}
		})
	}
}

func TestInactiveStatuses(t *testing.T) {
	assert.Equal(t, []string{"delivered", "cancelled"}, inactiveStatuses())
}
