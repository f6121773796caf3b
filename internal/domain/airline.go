package domain

import "strings"

// airlineNames maps exact carrier codes to display names.
var airlineNames = map[string]string{
	"AA": "American Airlines",
	"DL": "Delta",
	"UA": "United",
	"WN": "Southwest",
}

// airlinePrefixNames maps a carrier code's leading character to a display
// name. The search API labels results with airline table names such as
// "deltas" and "southwests", so the prefix is the stable part.
var airlinePrefixNames = map[byte]string{
	'D': "Delta",
	'S': "Southwest",
}

// AirlineDisplayName maps a carrier code to a human-readable airline name.
// It is a total function: unrecognized codes are echoed back unchanged so
// rendering never fails on an unknown carrier.
func AirlineDisplayName(code string) string {
	if code == "" {
		return code
	}
	upper := strings.ToUpper(code)
	if name, ok := airlineNames[upper]; ok {
		return name
	}
	if name, ok := airlinePrefixNames[upper[0]]; ok {
		return name
	}
	return code
}
