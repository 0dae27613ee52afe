package list_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
)

// parseQuery читает фильтры из query-параметров
// Поддерживаются status, isPaid, startDate и endDate (YYYY-MM-DD,
// период по дате получения автомобиля)
func parseQuery(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("isPaid"); raw != "" {
		isPaid, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid isPaid: %q", raw)
		}
		req.IsPaid = &isPaid
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %q", raw)
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %q", raw)
		}
		req.EndDate = &endDate
	}

	return req, nil
}
