package update_delivery_type

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BakeryService/internal/service/catalog"
	"github.com/m04kA/SMC-BakeryService/internal/service/catalog/models"
	"github.com/m04kA/SMC-BakeryService/pkg/logger"
)

type fakeService struct {
	called bool
	gotID  int64
	gotReq *models.UpdateDeliveryTypeRequest
	err    error
}

func (f *fakeService) Update(_ context.Context, id int64, req *models.UpdateDeliveryTypeRequest) (*models.DeliveryTypeResponse, error) {
	f.called, f.gotID, f.gotReq = true, id, req
	if f.err != nil {
		return nil, f.err
	}
	return &models.DeliveryTypeResponse{ID: id, Name: "Express", TimeSlots: req.TimeSlots}, nil
}

func newRouter(svc CatalogService) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/delivery-types/{deliveryTypeId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)
	return router
}

func put(router *mux.Router, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_PartialUpdate(t *testing.T) {
	svc := &fakeService{}
	rec := put(newRouter(svc), "/api/v1/admin/delivery-types/2",
		`{"price":"12.50","popular":true,"timeSlots":["9 AM - 11 AM","7 PM - 9 PM"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), svc.gotID)
	require.NotNil(t, svc.gotReq.Price)
	assert.Equal(t, "12.5", svc.gotReq.Price.String())
	require.NotNil(t, svc.gotReq.Popular)
	assert.True(t, *svc.gotReq.Popular)
	assert.Nil(t, svc.gotReq.Description)
	assert.Nil(t, svc.gotReq.Premium)
	assert.Equal(t, []string{"9 AM - 11 AM", "7 PM - 9 PM"}, svc.gotReq.TimeSlots)
}

func TestHandler_RejectedBeforeService(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "bad id", path: "/api/v1/admin/delivery-types/x", body: `{}`},
		{name: "zero id", path: "/api/v1/admin/delivery-types/0", body: `{}`},
		{name: "negative sort order", path: "/api/v1/admin/delivery-types/2", body: `{"sortOrder":-1}`},
		{name: "blank slot label", path: "/api/v1/admin/delivery-types/2", body: `{"timeSlots":[""]}`},
		{name: "description too long", path: "/api/v1/admin/delivery-types/2", body: `{"description":"` + strings.Repeat("a", 501) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			rec := put(newRouter(svc), tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, svc.called)
		})
	}
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "unparsable slot", err: fmt.Errorf("%w: invalid time slot %q", catalog.ErrInvalidInput, "noon"), wantCode: http.StatusBadRequest},
		{name: "not found", err: catalog.ErrDeliveryTypeNotFound, wantCode: http.StatusNotFound},
		{name: "internal", err: catalog.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := put(newRouter(&fakeService{err: tt.err}), "/api/v1/admin/delivery-types/2", `{"popular":false}`)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
