package roi

import (
	"testing"

	"github.com/jpl-au/worthit/internal/duration"
	"github.com/jpl-au/worthit/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssess(t *testing.T) {
	res, err := Assess(Input{
		Every:    duration.Week,
		Spent:    30 * duration.Minute,
		Saved:    20 * duration.Minute,
		Automate: 4 * duration.Hour,
	})
	require.NoError(t, err)

	assert.Equal(t, Yes, res.Recommendation)
	assert.Equal(t, Yes.Headline(), res.Headline)
	assert.InDelta(t, 12*duration.Week, res.TimeUntilROI, 1e-3)
	assert.InDelta(t, 12*duration.Week/duration.Month, res.MonthsUntilROI, 1e-9)
	assert.Equal(t, "2.8 months", res.ROI)
	assert.InDelta(t, 26.07, res.HoursSpentPerYear(), 0.01)
	assert.InDelta(t, 17.38, res.HoursSavedPerYear(), 0.01)
}

func TestAssess_Bands(t *testing.T) {
	tests := []struct {
		months float64
		want   Recommendation
		roi    string
	}{
		{3, Yes, "3.0 months"},
		{9, Probably, "9.0 months"},
		{18, Maybe, "18.0 months"},
		{36, ProbablyNot, "3.0 years"},
		{72, No, "6.0 years"},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			res, err := Assess(Input{
				Every:    duration.Month,
				Spent:    duration.Hour,
				Saved:    duration.Hour,
				Automate: tt.months * duration.Hour,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Recommendation)
			assert.InDelta(t, tt.months, res.MonthsUntilROI, 1e-9)
			assert.Equal(t, tt.roi, res.ROI)
		})
	}
}

func TestAssess_Days(t *testing.T) {
	res, err := Assess(Input{
		Every:    duration.Day,
		Spent:    10 * duration.Minute,
		Saved:    5 * duration.Minute,
		Automate: 15 * duration.Minute,
	})
	require.NoError(t, err)
	assert.Equal(t, Yes, res.Recommendation)
	assert.Equal(t, "3 days", res.ROI)
}

func TestAssess_HalvesRoundUp(t *testing.T) {
	res, err := AssessPhrases(Phrases{Every: "2d", Spent: "1d", Saved: "1d", Automate: "30h"})
	require.NoError(t, err)
	assert.Equal(t, "3 days", res.ROI)

	res, err = Assess(Input{
		Every:    duration.Month,
		Spent:    duration.Hour,
		Saved:    duration.Hour,
		Automate: 2.25 * duration.Hour,
	})
	require.NoError(t, err)
	assert.Equal(t, "2.3 months", res.ROI)
}

func TestFixed(t *testing.T) {
	tests := []struct {
		v    float64
		n    int
		want string
	}{
		{2.5, 0, "3"},
		{3.5, 0, "4"},
		{2.4, 0, "2"},
		{0.25, 1, "0.3"},
		{2.8, 1, "2.8"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fixed(tt.v, tt.n))
	}
}

func TestAssess_Invalid(t *testing.T) {
	t.Run("saved exceeds spent", func(t *testing.T) {
		_, err := Assess(Input{Every: duration.Day, Spent: duration.Minute, Saved: duration.Hour, Automate: duration.Hour})
		assert.ErrorIs(t, err, validate.ErrSavedExceedsSpent)
	})

	t.Run("zero periodicity", func(t *testing.T) {
		_, err := Assess(Input{Spent: duration.Hour, Saved: duration.Minute, Automate: duration.Hour})
		assert.ErrorIs(t, err, validate.ErrNotPositive)
	})

	t.Run("nothing saved", func(t *testing.T) {
		_, err := Assess(Input{Every: duration.Day, Spent: duration.Hour, Automate: duration.Hour})
		assert.ErrorIs(t, err, validate.ErrNotPositive)
	})

	t.Run("negative automation", func(t *testing.T) {
		_, err := Assess(Input{Every: duration.Day, Spent: duration.Hour, Saved: duration.Hour, Automate: -1})
		assert.ErrorIs(t, err, validate.ErrNegative)
	})
}

func TestAssessPhrases(t *testing.T) {
	res, err := AssessPhrases(Phrases{
		Every:    "every week",
		Spent:    "30 minutes",
		Saved:    "20m",
		Automate: "4 hours",
	})
	require.NoError(t, err)
	assert.Equal(t, Yes, res.Recommendation)

	_, err = AssessPhrases(Phrases{
		Every:    "every blorp",
		Spent:    "30 minutes",
		Saved:    "",
		Automate: "4 hours",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, validate.ErrUnparsable)
	assert.Contains(t, err.Error(), `every "every blorp"`)
	assert.Contains(t, err.Error(), "saved: unable to parse")
}

func TestRecommendations(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Recommendations() {
		h := r.Headline()
		assert.False(t, seen[h], "duplicate headline for %s", r)
		seen[h] = true
	}
}

func TestPhrases_Validate(t *testing.T) {
	p := Phrases{Every: "every week", Spent: "30 minutes", Saved: "20m", Automate: "4 hours"}
	assert.NoError(t, p.Validate(256))
	assert.NoError(t, p.Validate(0))

	p.Saved = " "
	p.Every = "every single week of the year"
	err := p.Validate(12)
	require.Error(t, err)
	assert.ErrorIs(t, err, validate.ErrEmptyPhrase)
	assert.ErrorIs(t, err, validate.ErrPhraseTooLong)

	var fe *validate.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "every", fe.Field)
}
