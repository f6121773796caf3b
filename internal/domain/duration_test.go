package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTripDuration(t *testing.T) {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		start       time.Time
		end         time.Time
		wantHours   int
		wantMinutes int
		wantText    string
	}{
		{
			name:      "identical instants",
			start:     base,
			end:       base,
			wantText:  "0h 0m",
			wantHours: 0, wantMinutes: 0,
		},
		{
			name:      "ninety minutes",
			start:     base,
			end:       base.Add(90 * time.Minute),
			wantText:  "1h 30m",
			wantHours: 1, wantMinutes: 30,
		},
		{
			name:      "three and a half hours",
			start:     base,
			end:       base.Add(3*time.Hour + 30*time.Minute),
			wantText:  "3h 30m",
			wantHours: 3, wantMinutes: 30,
		},
		{
			name:      "sub-minute remainder floors",
			start:     base,
			end:       base.Add(61*time.Minute + 59*time.Second),
			wantText:  "1h 1m",
			wantHours: 1, wantMinutes: 1,
		},
		{
			name:      "end before start clamps to zero",
			start:     base,
			end:       base.Add(-2 * time.Hour),
			wantText:  "0h 0m",
			wantHours: 0, wantMinutes: 0,
		},
		{
			name:      "overnight trip",
			start:     base,
			end:       base.Add(26*time.Hour + 5*time.Minute),
			wantText:  "26h 5m",
			wantHours: 26, wantMinutes: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TripDuration(tt.start, tt.end)
			assert.Equal(t, tt.wantHours, got.Hours)
			assert.Equal(t, tt.wantMinutes, got.Minutes)
			assert.Equal(t, tt.wantText, got.Formatted)
		})
	}
}

func TestDurationInfoTotalMinutes(t *testing.T) {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	got := TripDuration(base, base.Add(2*time.Hour+15*time.Minute))
	assert.Equal(t, 135, got.TotalMinutes())
}
