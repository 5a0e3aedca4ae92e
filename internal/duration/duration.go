// Package duration parses human descriptions of how often something
// happens or how long it takes into milliseconds.
//
// Two forms are understood. Shorthand is a single token such as "90m", "1d"
// or "2M". Phrases are several words: "every second month", "twice a week",
// "four times a day", "3 hours", "the first day every month". A phrase must
// name both a frequency (every, twice, 3, third, ...) and a period (day,
// week, january, q1, ...).
//
// Parsing never fails loudly. Input that cannot be understood reports
// ok == false; use Analyze to see how each token was read.
package duration

import (
	"math"
	"strings"
)

// Step records how the scanner read one token of a phrase.
type Step struct {
	Token
	// Ordinal is set when "second" was read as the ordinal 2.
	Ordinal bool
}

// Analysis is the full result of scanning an input.
type Analysis struct {
	Input     string
	Shorthand bool
	Steps     []Step

	Frequency    float64
	Period       float64
	HasFrequency bool
	HasPeriod    bool
	Inverse      bool

	// StoppedAt is the index of the preposition that ended the scan, or -1.
	StoppedAt int

	Millis float64
	OK     bool
}

// Parse converts s to a duration expressed in cfg's output unit
// (milliseconds when cfg is nil). ok is false when s cannot be parsed.
func Parse(s string, cfg *Config) (float64, bool) {
	a := Analyze(s)
	if !a.OK {
		return 0, false
	}
	return Convert(a.Millis, cfg.unit()), true
}

// Analyze scans s once, left to right, and reports what every token
// contributed along with the resulting duration in milliseconds.
func Analyze(s string) Analysis {
	a := Analysis{Input: s, StoppedAt: -1}

	fields := strings.Fields(s)
	switch len(fields) {
	case 0:
		return a
	case 1:
		a.Shorthand = true
		a.Millis, a.OK = ParseShorthand(fields[0])
		return a
	}

	tokens := make([]string, len(fields))
	for i, f := range fields {
		tokens[i] = strings.ToLower(f)
	}

	for i, tok := range tokens {
		t := Classify(tok)
		step := Step{Token: t}

		switch {
		case t.Class == TimesMarker:
			a.Inverse = true

		case t.Class == Preposition:
			if a.HasFrequency && a.HasPeriod {
				a.Steps = append(a.Steps, step)
				a.StoppedAt = i
				return a.finish()
			}

		case tok == "second" && periodAhead(tokens[i+1:]):
			step.Class, step.Value, step.Ordinal = Frequency, ordinals["second"], true
			a.Frequency, a.HasFrequency = step.Value, true

		case t.Class == Frequency:
			a.Frequency, a.HasFrequency = t.Value, true

		case t.Class == Period:
			a.Period, a.HasPeriod = t.Value, true
		}

		a.Steps = append(a.Steps, step)
	}
	return a.finish()
}

// periodAhead reports whether a period word appears in rest before the
// next preposition.
func periodAhead(rest []string) bool {
	for _, tok := range rest {
		if _, ok := prepositions[tok]; ok {
			return false
		}
		if _, ok := periods[tok]; ok {
			return true
		}
	}
	return false
}

func (a Analysis) finish() Analysis {
	if !a.HasFrequency || !a.HasPeriod {
		return a
	}
	freq := a.Frequency
	if a.Inverse {
		freq = 1 / freq
	}
	ms := freq * a.Period
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return a
	}
	a.Millis, a.OK = ms, true
	return a
}
