package dbmetrics

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubTx struct {
	DBExecutor
}

func (s *stubTx) Commit() error   { return nil }
func (s *stubTx) Rollback() error { return nil }

type stubExecutor struct {
	DBExecutor
	name string
}

func TestGetExecutor(t *testing.T) {
	fallback := &stubExecutor{name: "db"}

	executor := GetExecutor(context.Background(), fallback)
	assert.Same(t, fallback, executor)

	tx := &stubTx{}
	ctx := WithTx(context.Background(), tx)
	assert.True(t, IsInTransaction(ctx))
	assert.Same(t, tx, GetExecutor(ctx, fallback))
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "SELECT", operation("select id from orders"))
	assert.Equal(t, "UPDATE", operation("  UPDATE products SET x = 1"))
	assert.Equal(t, "unknown", operation(""))
}

func TestObserve_NilMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		observe(nil, "SELECT 1", time.Now(), sql.ErrConnDone)
	})
}
