package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCriteriaNormalized(t *testing.T) {
	returnDate := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("uppercases airports and applies defaults", func(t *testing.T) {
		c := SearchCriteria{
			DepartureAirport: " jfk ",
			ArriveAirport:    "lax",
			Airline:          "dl",
		}.Normalized()

		assert.Equal(t, "JFK", c.DepartureAirport)
		assert.Equal(t, "LAX", c.ArriveAirport)
		assert.Equal(t, "DL", c.Airline)
		assert.Equal(t, SortByTravelTime, c.SortBy)
		assert.Equal(t, 1, c.Page)
		assert.Equal(t, DefaultPageSize, c.PageSize)
	})

	t.Run("one-way clears return dates", func(t *testing.T) {
		c := SearchCriteria{
			OneWay:          true,
			ReturnDateStart: returnDate,
			ReturnDateEnd:   returnDate,
		}.Normalized()

		assert.True(t, c.ReturnDateStart.IsZero())
		assert.True(t, c.ReturnDateEnd.IsZero())
	})

	t.Run("round-trip keeps return dates", func(t *testing.T) {
		c := SearchCriteria{
			ReturnDateStart: returnDate,
			ReturnDateEnd:   returnDate,
		}.Normalized()

		assert.Equal(t, returnDate, c.ReturnDateStart)
		assert.Equal(t, returnDate, c.ReturnDateEnd)
	})
}

func TestSearchCriteriaValidate(t *testing.T) {
	valid := SearchCriteria{}.Normalized()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c SearchCriteria) SearchCriteria
	}{
		{
			name: "unknown sort option",
			mutate: func(c SearchCriteria) SearchCriteria {
				c.SortBy = "price"
				return c
			},
		},
		{
			name: "negative maxStops",
			mutate: func(c SearchCriteria) SearchCriteria {
				c.MaxStops = -1
				return c
			},
		},
		{
			name: "page below 1",
			mutate: func(c SearchCriteria) SearchCriteria {
				c.Page = 0
				return c
			},
		},
		{
			name: "page size above cap",
			mutate: func(c SearchCriteria) SearchCriteria {
				c.PageSize = MaxPageSize + 1
				return c
			},
		},
		{
			name: "return range reversed",
			mutate: func(c SearchCriteria) SearchCriteria {
				c.ReturnDateStart = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
				c.ReturnDateEnd = time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
				return c
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(valid).Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCriteria)
		})
	}
}

func TestSearchCriteriaTransitions(t *testing.T) {
	base := SearchCriteria{
		DepartureAirport: "JFK",
		ArriveAirport:    "LAX",
		SortBy:           SortByTravelTime,
		Page:             3,
		PageSize:         DefaultPageSize,
	}

	t.Run("WithSort resets page and keeps filters", func(t *testing.T) {
		next := base.WithSort(SortByArrivalTime)

		assert.Equal(t, SortByArrivalTime, next.SortBy)
		assert.Equal(t, 1, next.Page)
		assert.Equal(t, "JFK", next.DepartureAirport)
		assert.Equal(t, "LAX", next.ArriveAirport)
		// Original value is untouched.
		assert.Equal(t, 3, base.Page)
	})

	t.Run("NextPage advances only when more results exist", func(t *testing.T) {
		assert.Equal(t, 4, base.NextPage(true).Page)
		assert.Equal(t, base, base.NextPage(false))
	})

	t.Run("PrevPage stops at page 1", func(t *testing.T) {
		assert.Equal(t, 2, base.PrevPage().Page)

		first := base.FirstPage()
		assert.Equal(t, 1, first.Page)
		assert.Equal(t, first, first.PrevPage())
	})

	t.Run("only the page changes across paging", func(t *testing.T) {
		next := base.NextPage(true)
		next.Page = base.Page
		assert.Equal(t, base, next)
	})
}
