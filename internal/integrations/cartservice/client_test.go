package cartservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BakeryService/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, logger.NewNop())
}

func TestClient_GetCart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/carts/c-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c-1","userId":7,"items":[
			{"productId":1,"name":"Sourdough","quantity":2,"price":"6.25","preparationTime":"4-6 hours"},
			{"productId":2,"name":"Croissant","quantity":1,"price":2.1,"preparationTime":""}
		]}`))
	})

	cart, err := client.GetCart(context.Background(), "c-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, int64(7), cart.UserID)
	assert.True(t, decimal.RequireFromString("6.25").Equal(cart.Items[0].Price))

	items := cart.DomainItems()
	assert.Equal(t, "4-6 hours", items[0].PreparationTime)
	assert.True(t, decimal.RequireFromString("2.1").Equal(items[1].UnitPrice))
}

func TestClient_GetCart_EscapesCartID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/carts/x%2F..%2F..%2Fadmin%2Fpurge%3Fall=1", r.URL.EscapedPath())
		assert.Equal(t, "/internal/carts/x/../../admin/purge?all=1", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","userId":0,"items":[]}`))
	})

	_, err := client.GetCart(context.Background(), "x/../../admin/purge?all=1")
	require.NoError(t, err)
}

func TestClient_GetCart_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		body     string
		expected error
	}{
		{name: "not found", status: http.StatusNotFound, expected: ErrCartNotFound},
		{name: "bad request", status: http.StatusBadRequest, expected: ErrInvalidResponse},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", expected: ErrInvalidResponse},
		{name: "malformed body", status: http.StatusOK, body: "{", expected: ErrInvalidResponse},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := client.GetCart(context.Background(), "c-1")
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestClient_GetCart_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond, logger.NewNop())
	_, err := client.GetCart(context.Background(), "c-1")
	assert.ErrorIs(t, err, ErrInternal)
}
