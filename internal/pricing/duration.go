package pricing

import (
	"fmt"
	"time"
)

// DaysBetween derives the billable rental day count from the pickup and
// dropoff instants.
//
// Policy: the count is the ceiling over 24-hour blocks with a minimum of
// one day. A rental of exactly N*24h is N days, anything over the last
// full block starts a new billable day, and equal pickup and dropoff
// instants count as one day. Dropoff before pickup is rejected with
// ErrInvalidRange.
func DaysBetween(pickup, dropoff time.Time) (int, error) {
	if dropoff.Before(pickup) {
		return 0, fmt.Errorf("%w: dropoff %s precedes pickup %s",
			ErrInvalidRange, dropoff.Format(time.RFC3339), pickup.Format(time.RFC3339))
	}

	span := dropoff.Sub(pickup)

	days := int(span / (24 * time.Hour))
	if span%(24*time.Hour) > 0 {
		days++
	}

	// Минимум один расчётный день
	if days < 1 {
		days = 1
	}

	return days, nil
}
