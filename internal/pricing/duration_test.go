package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		pickup   time.Time
		dropoff  time.Time
		expected int
	}{
		{
			name:     "same instant counts as one day",
			pickup:   base,
			dropoff:  base,
			expected: 1,
		},
		{
			name:     "few hours within one day",
			pickup:   base,
			dropoff:  base.Add(6 * time.Hour),
			expected: 1,
		},
		{
			name:     "exactly 24 hours",
			pickup:   base,
			dropoff:  base.Add(24 * time.Hour),
			expected: 1,
		},
		{
			name:     "one minute over a full day starts a new one",
			pickup:   base,
			dropoff:  base.Add(24*time.Hour + time.Minute),
			expected: 2,
		},
		{
			name:     "exactly three days",
			pickup:   base,
			dropoff:  base.Add(72 * time.Hour),
			expected: 3,
		},
		{
			name:     "three days and a partial block",
			pickup:   base,
			dropoff:  base.Add(72*time.Hour + 5*time.Hour),
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := DaysBetween(tt.pickup, tt.dropoff)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, days)
			assert.GreaterOrEqual(t, days, 1)
		})
	}
}

func TestDaysBetween_DropoffBeforePickup(t *testing.T) {
	base := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	_, err := DaysBetween(base, base.Add(-time.Minute))
	assert.ErrorIs(t, err, ErrInvalidRange)
}
