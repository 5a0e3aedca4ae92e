package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"parse", "every", "day"}, "86400000 milliseconds"},
		{[]string{"parse", "every second month", "--unit", "months"}, "2 months"},
		{[]string{"parse", "twice", "a", "week", "-u", "days"}, "3.5 days"},
		{[]string{"parse", "90m", "-u", "h"}, "1.5 hours"},
		{[]string{"parse", "every week on Monday", "-u", "week"}, "1 weeks"},
	}

	for _, tt := range tests {
		t.Run(tt.args[1], func(t *testing.T) {
			env.equals(env.run(tt.args...), tt.want)
		})
	}
}

func TestParse_ConfiguredUnit(t *testing.T) {
	env := newTestEnv(t)
	env.run("config", "output.unit", "hours")

	env.equals(env.run("parse", "every day"), "24 hours")
	env.equals(env.run("parse", "every day", "--unit", "minutes"), "1440 minutes")
}

func TestParse_JSON(t *testing.T) {
	env := newTestEnv(t)

	var got struct {
		Phrase string  `json:"phrase"`
		Unit   string  `json:"unit"`
		Value  float64 `json:"value"`
	}
	require.NoError(t, env.runJSON(&got, "parse", "four times a day", "-u", "hours"))
	assert.Equal(t, "four times a day", got.Phrase)
	assert.Equal(t, "hours", got.Unit)
	assert.Equal(t, 6.0, got.Value)
}

func TestParse_Errors(t *testing.T) {
	env := newTestEnv(t)

	t.Run("unparsable", func(t *testing.T) {
		out, err := env.runErr("parse", "every blorp")
		require.Error(t, err)
		env.contains(out, "unable to parse")
	})

	t.Run("unknown unit", func(t *testing.T) {
		out, err := env.runErr("parse", "every day", "--unit", "fortnights")
		require.Error(t, err)
		env.contains(out, "unknown unit")
	})

	t.Run("too long", func(t *testing.T) {
		env.run("config", "limits.max_phrase", "5")
		out, err := env.runErr("parse", "every day")
		require.Error(t, err)
		env.contains(out, "phrase too long")
	})

	t.Run("no args", func(t *testing.T) {
		_, err := env.runErr("parse")
		require.Error(t, err)
	})

	t.Run("JSON error", func(t *testing.T) {
		var got map[string]string
		err := newTestEnv(t).runJSON(&got, "parse", "every blorp")
		require.Error(t, err)
		assert.Contains(t, got["error"], "unable to parse")
	})
}
