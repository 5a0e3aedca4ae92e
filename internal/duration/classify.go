// classify.go maps a single token onto the closed set of token classes the
// phrase scanner understands. The priority order is fixed: numeral,
// quantifier, cardinal, ordinal, period. Context-dependent resolution of
// "second" happens in the scanner, not here.

package duration

import (
	"regexp"
	"strconv"
)

// Class identifies what a token contributes to a phrase.
type Class int

const (
	Unrecognised Class = iota
	Frequency
	Period
	TimesMarker
	Preposition
)

func (c Class) String() string {
	switch c {
	case Frequency:
		return "frequency"
	case Period:
		return "period"
	case TimesMarker:
		return "times"
	case Preposition:
		return "preposition"
	default:
		return "unrecognised"
	}
}

// Token is a classified, lower-cased word. Value is the frequency
// multiplier or period length in milliseconds; it is zero for the other
// classes.
type Token struct {
	Text  string
	Class Class
	Value float64
}

// numeralRe matches whole numbers only; "1.5" is not a frequency.
var numeralRe = regexp.MustCompile(`^[0-9]+$`)

// Classify assigns a class to a lower-case token. "second" classifies as
// the period; Analyze decides when it is really the ordinal.
func Classify(tok string) Token {
	t := Token{Text: tok}

	switch tok {
	case "times", "time":
		t.Class = TimesMarker
		return t
	}
	if _, ok := prepositions[tok]; ok {
		t.Class = Preposition
		return t
	}

	if numeralRe.MatchString(tok) {
		if n, err := strconv.ParseFloat(tok, 64); err == nil {
			t.Class, t.Value = Frequency, n
			return t
		}
	}
	if v, ok := quantifiers[tok]; ok {
		t.Class, t.Value = Frequency, v
		return t
	}
	if v, ok := cardinals[tok]; ok {
		t.Class, t.Value = Frequency, v
		return t
	}
	if tok != "second" {
		if v, ok := ordinals[tok]; ok {
			t.Class, t.Value = Frequency, v
			return t
		}
	}
	if v, ok := periods[tok]; ok {
		t.Class, t.Value = Period, v
		return t
	}
	return t
}
