package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestItineraryID(t *testing.T) {
	outHead := testSegment(7, "JFK", "ORD", 0)
	ret := NewLeg(testSegment(9, "LAX", "JFK", 48))

	tests := []struct {
		name      string
		itinerary Itinerary
		want      string
	}{
		{
			name:      "one-way id is the head segment id",
			itinerary: Itinerary{Outbound: NewLeg(outHead, testSegment(8, "ORD", "LAX", 2))},
			want:      "7",
		},
		{
			// Booking acts on the combined itinerary keyed by the
			// outbound head, also for round trips.
			name:      "round-trip id stays the outbound head id",
			itinerary: Itinerary{Outbound: NewLeg(outHead), Return: &ret},
			want:      "7",
		},
		{
			name:      "empty outbound has no id",
			itinerary: Itinerary{},
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.itinerary.ID())
		})
	}
}

func TestItineraryDepartureTime(t *testing.T) {
	head := testSegment(1, "JFK", "LAX", 0)
	it := Itinerary{Outbound: NewLeg(head, testSegment(2, "LAX", "SFO", 3))}

	assert.Equal(t, head.DepartureTime, it.DepartureTime())
	assert.Equal(t, time.Time{}, Itinerary{}.DepartureTime())
}

func TestItineraryIsRoundTrip(t *testing.T) {
	ret := NewLeg(testSegment(2, "LAX", "JFK", 48))
	empty := Leg{}

	assert.False(t, Itinerary{Outbound: NewLeg(testSegment(1, "JFK", "LAX", 0))}.IsRoundTrip())
	assert.False(t, Itinerary{Outbound: NewLeg(testSegment(1, "JFK", "LAX", 0)), Return: &empty}.IsRoundTrip())
	assert.True(t, Itinerary{Outbound: NewLeg(testSegment(1, "JFK", "LAX", 0)), Return: &ret}.IsRoundTrip())
}

func TestResultPageHasNext(t *testing.T) {
	tests := []struct {
		name   string
		page   ResultPage
		oneWay bool
		want   bool
	}{
		{name: "one-way with more", page: ResultPage{HasMore: true}, oneWay: true, want: true},
		{name: "one-way exhausted", page: ResultPage{}, oneWay: true, want: false},
		{
			name:   "round-trip more outbound only",
			page:   ResultPage{HasMoreOutbound: true},
			oneWay: false,
			want:   true,
		},
		{
			name:   "round-trip more return only",
			page:   ResultPage{HasMoreReturn: true},
			oneWay: false,
			want:   true,
		},
		{name: "round-trip exhausted", page: ResultPage{}, oneWay: false, want: false},
		{
			name:   "round-trip plain hasMore still counts",
			page:   ResultPage{HasMore: true},
			oneWay: false,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.HasNext(tt.oneWay))
		})
	}
}
