// Package roi decides whether automating a recurring task pays off.
//
// The inputs are four durations: how often the task recurs, how long it
// takes each time, how much of that automation would save, and how long
// automating it would take. The verdict is banded by the number of months
// until the time invested is won back.
package roi

import (
	"errors"
	"math"
	"strconv"

	"github.com/jpl-au/worthit/internal/duration"
	"github.com/jpl-au/worthit/internal/validate"
)

// Recommendation is the verdict for a task.
type Recommendation string

const (
	Yes         Recommendation = "yes"
	Probably    Recommendation = "probably"
	Maybe       Recommendation = "maybe"
	ProbablyNot Recommendation = "probably not"
	No          Recommendation = "no"
)

// Band upper bounds in months, exclusive.
const (
	yesBelow         = 6
	probablyBelow    = 12
	maybeBelow       = 24
	probablyNotBelow = 60
)

// Recommendations returns all verdicts from most to least favourable.
func Recommendations() []Recommendation {
	return []Recommendation{Yes, Probably, Maybe, ProbablyNot, No}
}

// Headline returns the sentence shown to the user for r.
func (r Recommendation) Headline() string {
	switch r {
	case Yes:
		return "You should definitely automate your task."
	case Probably:
		return "You should likely automate your task."
	case Maybe:
		return "You should probably automate your task."
	case ProbablyNot:
		return "You should probably not automate your task."
	default:
		return "You should not automate your task."
	}
}

// recommend bands months until break-even.
func recommend(months float64) Recommendation {
	switch {
	case months < yesBelow:
		return Yes
	case months < probablyBelow:
		return Probably
	case months < maybeBelow:
		return Maybe
	case months < probablyNotBelow:
		return ProbablyNot
	default:
		return No
	}
}

// Input holds the four task durations in milliseconds.
type Input struct {
	Every    float64 `json:"every_ms"`    // time between occurrences
	Spent    float64 `json:"spent_ms"`    // time spent each occurrence
	Saved    float64 `json:"saved_ms"`    // time automation saves each occurrence
	Automate float64 `json:"automate_ms"` // one-off cost of automating
}

// Result is the outcome of an assessment. All durations are milliseconds.
type Result struct {
	Recommendation   Recommendation `json:"recommendation"`
	Headline         string         `json:"headline"`
	TimeSpentPerYear float64        `json:"time_spent_per_year_ms"`
	TimeSavedPerYear float64        `json:"time_saved_per_year_ms"`
	TimeUntilROI     float64        `json:"time_until_roi_ms"`
	MonthsUntilROI   float64        `json:"months_until_roi"`
	ROI              string         `json:"roi"`
}

// HoursSpentPerYear is TimeSpentPerYear in hours.
func (r Result) HoursSpentPerYear() float64 {
	return duration.Convert(r.TimeSpentPerYear, duration.Hours)
}

// HoursSavedPerYear is TimeSavedPerYear in hours.
func (r Result) HoursSavedPerYear() float64 {
	return duration.Convert(r.TimeSavedPerYear, duration.Hours)
}

// Validate checks that the inputs describe a task that can be assessed.
// All failures are reported together.
func (in Input) Validate() error {
	var errs []error
	if in.Every <= 0 {
		errs = append(errs, &validate.FieldError{Field: "every", Err: validate.ErrNotPositive})
	}
	if in.Saved <= 0 {
		errs = append(errs, &validate.FieldError{Field: "saved", Err: validate.ErrNotPositive})
	}
	if in.Automate < 0 {
		errs = append(errs, &validate.FieldError{Field: "automate", Err: validate.ErrNegative})
	}
	if in.Spent < in.Saved {
		errs = append(errs, &validate.FieldError{Field: "saved", Err: validate.ErrSavedExceedsSpent})
	}
	return errors.Join(errs...)
}

// Assess computes the yearly time budget and break-even point for in.
func Assess(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	untilROI := in.Automate / (in.Saved / in.Every)
	months := untilROI / duration.Month
	rec := recommend(months)

	return Result{
		Recommendation:   rec,
		Headline:         rec.Headline(),
		TimeSpentPerYear: in.Spent * duration.Year / in.Every,
		TimeSavedPerYear: in.Saved * duration.Year / in.Every,
		TimeUntilROI:     untilROI,
		MonthsUntilROI:   months,
		ROI:              formatROI(untilROI, months),
	}, nil
}

// formatROI describes the break-even time in the most readable unit:
// years beyond two years, days below one month, months otherwise.
func formatROI(untilROI, months float64) string {
	switch {
	case months > 24:
		return fixed(months/12, 1) + " years"
	case months < 1:
		return fixed(untilROI/duration.Day, 0) + " days"
	default:
		return fixed(months, 1) + " months"
	}
}

// fixed formats v with n decimals, rounding halves up rather than to even.
func fixed(v float64, n int) string {
	p := math.Pow10(n)
	return strconv.FormatFloat(math.Floor(v*p+0.5)/p, 'f', n, 64)
}
