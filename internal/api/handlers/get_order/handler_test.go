package get_order

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BakeryService/internal/api/middleware"
	"github.com/m04kA/SMC-BakeryService/internal/service/orders"
	"github.com/m04kA/SMC-BakeryService/internal/service/orders/models"
	"github.com/m04kA/SMC-BakeryService/pkg/logger"
)

type fakeService struct {
	called    bool
	gotID     int64
	gotUserID int64
	err       error
}

func (f *fakeService) GetByID(_ context.Context, id int64, userID int64) (*models.OrderResponse, error) {
	f.called, f.gotID, f.gotUserID = true, id, userID
	if f.err != nil {
		return nil, f.err
	}
	return &models.OrderResponse{ID: id, UserID: userID}, nil
}

func newRouter(svc OrderService) *mux.Router {
	router := mux.NewRouter()
	router.Handle("/api/v1/orders/{orderId}",
		middleware.Auth(http.HandlerFunc(NewHandler(svc, logger.NewNop()).Handle))).Methods(http.MethodGet)
	return router
}

func get(router *mux.Router, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.UserIDHeader, "42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	svc := &fakeService{}
	rec := get(newRouter(svc), "/api/v1/orders/7")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.gotID)
	assert.Equal(t, int64(42), svc.gotUserID)
}

func TestHandler_WithoutUserContext(t *testing.T) {
	svc := &fakeService{}
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/orders/{orderId}", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders/7", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, svc.called)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		err      error
		wantCode int
	}{
		{name: "non numeric id", path: "/api/v1/orders/abc", wantCode: http.StatusBadRequest},
		{name: "zero id", path: "/api/v1/orders/0", wantCode: http.StatusBadRequest},
		{name: "negative id", path: "/api/v1/orders/-3", wantCode: http.StatusBadRequest},
		{name: "not found", path: "/api/v1/orders/7", err: orders.ErrOrderNotFound, wantCode: http.StatusNotFound},
		{name: "foreign order", path: "/api/v1/orders/7", err: orders.ErrAccessDenied, wantCode: http.StatusForbidden},
		{name: "internal", path: "/api/v1/orders/7", err: orders.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(newRouter(&fakeService{err: tt.err}), tt.path)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
