package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSegment builds a segment with a predictable number and a fixed
// one-hour duration starting at the given offset from a base instant.
func testSegment(n int, from, to string, offsetHours int) Segment {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	return Segment{
		ID:               fmt.Sprintf("%d", n),
		FlightNumber:     fmt.Sprintf("DL%d00", n),
		Airline:          "deltas",
		DepartureAirport: from,
		ArrivalAirport:   to,
		DepartureTime:    base.Add(time.Duration(offsetHours) * time.Hour),
		ArrivalTime:      base.Add(time.Duration(offsetHours+1) * time.Hour),
	}
}

func TestLegSingleSegment(t *testing.T) {
	leg := NewLeg(testSegment(1, "JFK", "LAX", 0))

	assert.Equal(t, 0, leg.StopCount())
	assert.Equal(t, []string{"DL100"}, leg.FlightNumbers())

	head, ok := leg.Head()
	require.True(t, ok)
	last, ok := leg.Last()
	require.True(t, ok)
	assert.Equal(t, head, last)
	assert.Equal(t, "JFK", leg.Origin())
	assert.Equal(t, "LAX", leg.Destination())
}

func TestLegChainProperties(t *testing.T) {
	// For a chain of length n: StopCount == n-1, FlightNumbers has n
	// entries in travel order, and Last is the n-th segment.
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("length %d", n), func(t *testing.T) {
			segments := make([]Segment, 0, n)
			for i := 0; i < n; i++ {
				segments = append(segments, testSegment(i+1, "AAA", "BBB", i*2))
			}
			leg := NewLeg(segments...)

			assert.Equal(t, n-1, leg.StopCount())

			numbers := leg.FlightNumbers()
			require.Len(t, numbers, n)
			assert.Equal(t, n, leg.StopCount()+1)
			for i, num := range numbers {
				assert.Equal(t, segments[i].FlightNumber, num)
			}

			last, ok := leg.Last()
			require.True(t, ok)
			assert.Equal(t, segments[n-1], last)
		})
	}
}

func TestLegEmpty(t *testing.T) {
	var leg Leg

	assert.True(t, leg.IsEmpty())
	assert.Equal(t, 0, leg.StopCount())
	assert.Empty(t, leg.FlightNumbers())
	assert.Equal(t, "", leg.Origin())
	assert.Equal(t, "", leg.Destination())

	_, ok := leg.Head()
	assert.False(t, ok)
	_, ok = leg.Last()
	assert.False(t, ok)

	// Nothing to show, not an error: duration is zero.
	assert.Equal(t, "0h 0m", leg.Duration().Formatted)
}

func TestLegDuration(t *testing.T) {
	depart := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		segments []Segment
		want     string
	}{
		{
			name: "single segment",
			segments: []Segment{{
				FlightNumber:  "DL123",
				DepartureTime: depart,
				ArrivalTime:   depart.Add(3*time.Hour + 30*time.Minute),
			}},
			want: "3h 30m",
		},
		{
			name: "multi segment spans head departure to last arrival",
			segments: []Segment{
				{FlightNumber: "DL100", DepartureTime: depart, ArrivalTime: depart.Add(2 * time.Hour)},
				{FlightNumber: "DL200", DepartureTime: depart.Add(3 * time.Hour), ArrivalTime: depart.Add(6 * time.Hour)},
			},
			want: "6h 0m",
		},
		{
			name: "inconsistent data clamps to zero",
			segments: []Segment{{
				FlightNumber:  "DL999",
				DepartureTime: depart,
				ArrivalTime:   depart.Add(-time.Hour),
			}},
			want: "0h 0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leg := NewLeg(tt.segments...)
			assert.Equal(t, tt.want, leg.Duration().Formatted)
		})
	}
}
