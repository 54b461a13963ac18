package get_delivery_types

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BakeryService/internal/service/catalog/models"
	"github.com/m04kA/SMC-BakeryService/pkg/logger"
)

type fakeService struct {
	resp *models.DeliveryTypeListResponse
	err  error
}

func (f *fakeService) List(_ context.Context) (*models.DeliveryTypeListResponse, error) {
	return f.resp, f.err
}

func TestHandler_Success(t *testing.T) {
	svc := &fakeService{resp: &models.DeliveryTypeListResponse{
		DeliveryTypes: []models.DeliveryTypeResponse{
			{ID: 1, Name: "Standard", Price: "0.00", TimeSlots: []string{"11 AM - 1 PM"}},
			{ID: 2, Name: "Express", Price: "9.99", Popular: true},
		},
	}}

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/delivery-types", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DeliveryTypeListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.DeliveryTypes, 2)
	assert.Equal(t, "Standard", resp.DeliveryTypes[0].Name)
	assert.Equal(t, []string{"11 AM - 1 PM"}, resp.DeliveryTypes[0].TimeSlots)
	assert.True(t, resp.DeliveryTypes[1].Popular)
}

func TestHandler_ServiceError(t *testing.T) {
	svc := &fakeService{err: errors.New("connection refused")}

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/delivery-types", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
