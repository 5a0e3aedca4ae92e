package duration

import (
	"fmt"
	"strings"
)

// Unit is an output unit for parsed durations. The zero value is
// Milliseconds.
type Unit int

const (
	Milliseconds Unit = iota
	Seconds
	Minutes
	Hours
	Days
	Weeks
	Months
	Years
)

var unitNames = [...]string{
	Milliseconds: "milliseconds",
	Seconds:      "seconds",
	Minutes:      "minutes",
	Hours:        "hours",
	Days:         "days",
	Weeks:        "weeks",
	Months:       "months",
	Years:        "years",
}

var unitMillis = [...]float64{
	Milliseconds: Millisecond,
	Seconds:      Second,
	Minutes:      Minute,
	Hours:        Hour,
	Days:         Day,
	Weeks:        Week,
	Months:       Month,
	Years:        Year,
}

// Units returns all output units, smallest first.
func Units() []Unit {
	return []Unit{Milliseconds, Seconds, Minutes, Hours, Days, Weeks, Months, Years}
}

// UnitNames returns the canonical names of all output units.
func UnitNames() []string {
	names := make([]string, len(unitNames))
	copy(names, unitNames[:])
	return names
}

func (u Unit) valid() bool {
	return u >= Milliseconds && u <= Years
}

// String returns the canonical plural name, e.g. "hours".
func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// Millis returns the number of milliseconds in one u. Invalid units report
// one millisecond so conversions degrade to the identity.
func (u Unit) Millis() float64 {
	if !u.valid() {
		return Millisecond
	}
	return unitMillis[u]
}

// ParseUnit resolves a unit from its plural name ("hours"), singular name
// ("hour") or shorthand code ("h"). Names are case-insensitive; shorthand
// codes keep their case so "m" is minutes and "M" is months.
func ParseUnit(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Milliseconds, nil
	}
	if ms, ok := shorthandUnits[s]; ok {
		for _, u := range Units() {
			if u.Millis() == ms {
				return u, nil
			}
		}
	}
	name := strings.ToLower(s)
	for i, n := range unitNames {
		if name == n || name == strings.TrimSuffix(n, "s") {
			return Unit(i), nil
		}
	}
	return Milliseconds, fmt.Errorf("unknown unit %q (valid: %s)", s, strings.Join(UnitNames(), ", "))
}

// Convert expresses ms in unit u.
func Convert(ms float64, u Unit) float64 {
	if u == Milliseconds {
		return ms
	}
	return ms / u.Millis()
}

// Config controls the output of Parse.
type Config struct {
	OutputUnit Unit
}

func (c *Config) unit() Unit {
	if c == nil {
		return Milliseconds
	}
	return c.OutputUnit
}
