package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestROI(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("roi", "--every", "every week", "--spent", "30m", "--saved", "20m", "--automate", "4h")
	env.contains(out, "You should definitely automate your task.")
	env.contains(out, "Recommendation:      yes")
	env.contains(out, "Time until ROI:      2.8 months")
}

func TestROI_Report(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("roi", "-e", "every day", "-s", "10 minutes", "-v", "10 minutes", "-a", "2 hours", "--report")
	env.contains(out, "# Should you automate it?")
	env.contains(out, "| Happens | every day |")
	env.contains(out, "Time until ROI: 12 days")
}

func TestROI_JSON(t *testing.T) {
	env := newTestEnv(t)

	var got struct {
		Recommendation string  `json:"recommendation"`
		Months         float64 `json:"months_until_roi"`
		ROI            string  `json:"roi"`
	}
	require.NoError(t, env.runJSON(&got, "roi", "--every", "once a month", "--spent", "1h", "--saved", "1h", "--automate", "3 days"))
	assert.Equal(t, "no", got.Recommendation)
	assert.InDelta(t, 72, got.Months, 1e-6)
	assert.Equal(t, "6.0 years", got.ROI)
}

func TestROI_Errors(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing flags", func(t *testing.T) {
		out, err := env.runErr("roi", "--every", "every day")
		require.Error(t, err)
		env.contains(out, "required flag")
	})

	t.Run("every bad field reported", func(t *testing.T) {
		out, err := env.runErr("roi", "--every", "every blorp", "--spent", "1h", "--saved", "sometimes", "--automate", "1d")
		require.Error(t, err)
		env.contains(out, `every "every blorp": unable to parse`)
		env.contains(out, `saved "sometimes": unable to parse`)
	})

	t.Run("saved exceeds spent", func(t *testing.T) {
		out, err := env.runErr("roi", "--every", "every day", "--spent", "1m", "--saved", "1h", "--automate", "1d")
		require.Error(t, err)
		env.contains(out, "time saved must not exceed time spent")
	})
}
