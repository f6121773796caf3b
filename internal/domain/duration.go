package domain

import (
	"strconv"
	"time"
)

// DurationInfo is a trip duration split into whole hours and remainder
// minutes, with the display form used by result rows.
type DurationInfo struct {
	// Hours is the whole-hour portion of the duration
	Hours int `json:"hours"`

	// Minutes is the remainder in minutes (0-59)
	Minutes int `json:"minutes"`

	// Formatted is the display string, e.g. "3h 30m"
	Formatted string `json:"formatted"`
}

// TripDuration computes the duration between two instants as
// floor((end-start)/minute) split into hours and minutes.
// An end before start indicates inconsistent upstream data and is clamped
// to zero rather than reported as an error.
func TripDuration(start, end time.Time) DurationInfo {
	totalMinutes := int(end.Sub(start) / time.Minute)
	if totalMinutes < 0 {
		totalMinutes = 0
	}

	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	return DurationInfo{
		Hours:     hours,
		Minutes:   minutes,
		Formatted: strconv.Itoa(hours) + "h " + strconv.Itoa(minutes) + "m",
	}
}

// TotalMinutes returns the duration in whole minutes.
func (d DurationInfo) TotalMinutes() int {
	return d.Hours*60 + d.Minutes
}
