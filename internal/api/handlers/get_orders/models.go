package get_orders

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	"github.com/m04kA/SMC-BakeryService/internal/service/orders/models"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// ParseQuery разбирает query параметры списка заказов
// status, deliveryTypeId, startDate, endDate (YYYY-MM-DD), includeInactive, limit, offset
func ParseQuery(query url.Values) (*models.ListOrdersRequest, error) {
	req := &models.ListOrdersRequest{Limit: defaultLimit}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("deliveryTypeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid deliveryTypeId: %q", raw)
		}
		req.DeliveryTypeID = &id
	}

	for _, param := range []struct {
		name string
		dst  **time.Time
	}{
		{"startDate", &req.StartDate},
		{"endDate", &req.EndDate},
	} {
		raw := query.Get(param.name)
		if raw == "" {
			continue
		}
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %q", param.name, raw)
		}
		*param.dst = &date
	}

	if raw := query.Get("includeInactive"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive: %q", raw)
		}
		req.IncludeInactive = include
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			return nil, fmt.Errorf("invalid limit: %q", raw)
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		req.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid offset: %q", raw)
		}
		req.Offset = offset
	}

	return req, nil
}
