package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateRoute(t *testing.T) {
	assert.NoError(t, ValidateRoute(1, 2))
	assert.ErrorIs(t, ValidateRoute(3, 3), ErrSameAirport)
}

func TestValidateFlightTimes(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		departure time.Time
		arrival   time.Time
		wantErr   error
	}{
		{
			name:      "valid future flight",
			departure: now.Add(24 * time.Hour),
			arrival:   now.Add(26 * time.Hour),
		},
		{
			name:      "arrival before departure",
			departure: now.Add(26 * time.Hour),
			arrival:   now.Add(24 * time.Hour),
			wantErr:   ErrInvalidTimeRange,
		},
		{
			name:      "arrival equals departure",
			departure: now.Add(24 * time.Hour),
			arrival:   now.Add(24 * time.Hour),
			wantErr:   ErrInvalidTimeRange,
		},
		{
			name:      "departure in the past",
			departure: now.Add(-time.Hour),
			arrival:   now.Add(time.Hour),
			wantErr:   ErrPastDeparture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFlightTimes(tt.departure, tt.arrival, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestFlightStatusValid(t *testing.T) {
	for _, s := range []FlightStatus{FlightScheduled, FlightDelayed, FlightCancelled, FlightLanded} {
		assert.True(t, s.Valid(), "status %q", s)
	}

	assert.False(t, FlightStatus("boarding").Valid())
	assert.False(t, FlightStatus("").Valid())
}
