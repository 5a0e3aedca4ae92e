// Package explain reports how the duration parser read a phrase and, when
// it could not, why. The parser only signals success or failure; the
// reasons are reconstructed here from duration.Analyze.
package explain

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jpl-au/worthit/internal/duration"
)

// Reasons a phrase could not be parsed.
const (
	ReasonEmpty       = "empty input"
	ReasonShorthand   = "not a shorthand duration (expected <digits><unit>, e.g. 90m, 1d, 2M)"
	ReasonNoFrequency = "no frequency found (e.g. every, twice, three, 3, third)"
	ReasonNoPeriod    = "no period found (e.g. day, week, month, monday, january)"
	ReasonNotFinite   = "result is not a finite duration"
)

// Token describes how one word of the phrase was read. Value is set for
// frequency and period tokens only, so a frequency of 0 is still reported.
type Token struct {
	Text       string   `json:"text"`
	Class      string   `json:"class"`
	Value      *float64 `json:"value,omitempty"`
	Note       string   `json:"note,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Report is the explanation of a single phrase.
type Report struct {
	Phrase    string   `json:"phrase"`
	Shorthand bool     `json:"shorthand"`
	Tokens    []Token  `json:"tokens,omitempty"`
	Frequency *float64 `json:"frequency,omitempty"`
	Period    *float64 `json:"period_ms,omitempty"`
	Inverse   bool     `json:"inverse,omitempty"`
	Ignored   []string `json:"ignored,omitempty"`
	Millis    *float64 `json:"ms,omitempty"`
	Reasons   []string `json:"reasons,omitempty"`
}

// OK reports whether the phrase parsed.
func (r Report) OK() bool { return r.Millis != nil }

// Explain analyses phrase and builds a Report.
func Explain(phrase string) Report {
	a := duration.Analyze(phrase)
	r := Report{Phrase: phrase, Shorthand: a.Shorthand}

	if a.OK {
		ms := a.Millis
		r.Millis = &ms
	}

	if a.Shorthand {
		if !a.OK {
			r.Reasons = append(r.Reasons, ReasonShorthand)
		}
		return r
	}
	if len(a.Steps) == 0 {
		r.Reasons = append(r.Reasons, ReasonEmpty)
		return r
	}

	vocab := duration.Vocabulary()
	for i, s := range a.Steps {
		t := Token{Text: s.Text, Class: s.Class.String()}
		if s.Class == duration.Frequency || s.Class == duration.Period {
			v := s.Value
			t.Value = &v
		}
		switch {
		case s.Ordinal:
			t.Note = "ordinal: a period word follows"
		case s.Text == "second" && s.Class == duration.Period:
			t.Note = "unit: no period word follows"
		case i == a.StoppedAt:
			t.Note = "ends the phrase: frequency and period already set"
		case s.Class == duration.TimesMarker:
			t.Note = "divides the period by the frequency"
		case s.Class == duration.Unrecognised:
			t.Suggestion = Suggest(s.Text, vocab)
		}
		r.Tokens = append(r.Tokens, t)
	}

	if a.StoppedAt >= 0 {
		fields := strings.Fields(phrase)
		r.Ignored = fields[a.StoppedAt+1:]
	}
	if a.HasFrequency {
		f := a.Frequency
		r.Frequency = &f
	}
	if a.HasPeriod {
		p := a.Period
		r.Period = &p
	}
	r.Inverse = a.Inverse

	switch {
	case a.OK:
	case !a.HasFrequency && !a.HasPeriod:
		r.Reasons = append(r.Reasons, ReasonNoFrequency, ReasonNoPeriod)
	case !a.HasFrequency:
		r.Reasons = append(r.Reasons, ReasonNoFrequency)
	case !a.HasPeriod:
		r.Reasons = append(r.Reasons, ReasonNoPeriod)
	default:
		r.Reasons = append(r.Reasons, ReasonNotFinite)
	}
	return r
}

// Write prints r as human-readable text.
func (r Report) Write(w io.Writer) {
	fmt.Fprintf(w, "phrase: %q\n", r.Phrase)
	if r.Shorthand {
		fmt.Fprintln(w, "form:   shorthand")
	} else {
		fmt.Fprintln(w, "form:   phrase")
	}

	for _, t := range r.Tokens {
		line := fmt.Sprintf("  %-12s %-13s", t.Text, t.Class)
		if t.Value != nil {
			line += " " + formatFloat(*t.Value)
		}
		if t.Note != "" {
			line += "  (" + t.Note + ")"
		}
		if t.Suggestion != "" {
			line += fmt.Sprintf("  did you mean %q?", t.Suggestion)
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	if len(r.Ignored) > 0 {
		fmt.Fprintf(w, "ignored: %s\n", strings.Join(r.Ignored, " "))
	}

	if r.OK() {
		fmt.Fprintf(w, "result: %s ms\n", formatFloat(*r.Millis))
		return
	}
	for _, reason := range r.Reasons {
		fmt.Fprintf(w, "unable to parse: %s\n", reason)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
