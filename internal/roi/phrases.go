package roi

import (
	"errors"

	"github.com/jpl-au/worthit/internal/duration"
	"github.com/jpl-au/worthit/internal/validate"
)

// Phrases holds the four task durations as free text, e.g.
// {"every week", "30 minutes", "20 minutes", "4 hours"}.
type Phrases struct {
	Every    string `json:"every"`
	Spent    string `json:"spent"`
	Saved    string `json:"saved"`
	Automate string `json:"automate"`
}

// fields pairs each phrase with its field name and destination in in.
func (p Phrases) fields(in *Input) []phraseField {
	return []phraseField{
		{"every", p.Every, &in.Every},
		{"spent", p.Spent, &in.Spent},
		{"saved", p.Saved, &in.Saved},
		{"automate", p.Automate, &in.Automate},
	}
}

type phraseField struct {
	name   string
	phrase string
	dst    *float64
}

// Validate checks every phrase is non-empty and at most maxLen bytes
// (0 means no limit), reporting all offending fields at once.
func (p Phrases) Validate(maxLen int) error {
	var errs []error
	for _, f := range p.fields(&Input{}) {
		if err := validate.Phrase(f.phrase, maxLen); err != nil {
			errs = append(errs, &validate.FieldError{Field: f.name, Err: err})
		}
	}
	return errors.Join(errs...)
}

// Parse converts every phrase to milliseconds. Each phrase that cannot be
// parsed yields a *validate.FieldError wrapping validate.ErrUnparsable;
// all of them are returned joined.
func (p Phrases) Parse() (Input, error) {
	var (
		in   Input
		errs []error
	)
	for _, f := range p.fields(&in) {
		v, ok := duration.Parse(f.phrase, nil)
		if !ok {
			errs = append(errs, &validate.FieldError{Field: f.name, Input: f.phrase, Err: validate.ErrUnparsable})
			continue
		}
		*f.dst = v
	}
	return in, errors.Join(errs...)
}

// AssessPhrases parses p and assesses the result.
func AssessPhrases(p Phrases) (Result, error) {
	in, err := p.Parse()
	if err != nil {
		return Result{}, err
	}
	return Assess(in)
}
