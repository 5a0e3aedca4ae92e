package duration

import (
	"regexp"
	"strconv"
)

var shorthandRe = regexp.MustCompile(`^(\d+)([a-zA-Z]+)$`)

// ParseShorthand parses compact durations of the form <digits><unit>, such
// as "90m", "1d" or "2M", returning milliseconds. Unit codes are
// case-sensitive: m is minutes and M is months. The whole string must
// match; anything else reports ok == false.
func ParseShorthand(s string) (float64, bool) {
	matches := shorthandRe.FindStringSubmatch(s)
	if matches == nil {
		return 0, false
	}

	unit, ok := shorthandUnits[matches[2]]
	if !ok {
		return 0, false
	}

	// Regex ensures digits only; ParseFloat avoids overflow on long inputs
	n, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, false
	}
	return n * unit, true
}
