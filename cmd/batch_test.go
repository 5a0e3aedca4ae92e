package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const batchInput = `# weekly chores
every week

twice a day
90m
`

func TestBatch(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.runStdin(batchInput, "batch", "--unit", "hours")

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "2\t168 hours\tevery week", lines[0])
		assert.Equal(t, "4\t12 hours\ttwice a day", lines[1])
		assert.Equal(t, "5\t1.5 hours\t90m", lines[2])
	})

	t.Run("file", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile("tasks.txt", batchInput)
		out := env.run("batch", "tasks.txt", "-u", "hours", "--workers", "1")
		env.contains(out, "168 hours")
	})

	t.Run("failures exit non-zero after printing", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runStdinErr("every day\nevery blorp\n", "batch")
		require.Error(t, err)
		env.contains(out, "1\t86400000 milliseconds\tevery day")
		env.contains(out, "2\t-\tevery blorp")
		env.contains(out, "1 of 2 phrases could not be parsed")
	})

	t.Run("missing file", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.runErr("batch", "missing.txt")
		require.Error(t, err)
	})
}

func TestBatch_JSON(t *testing.T) {
	env := newTestEnv(t)
	env.writeFile("tasks.txt", "every day\nevery blorp\n")

	var got []struct {
		Line   int     `json:"line"`
		Phrase string  `json:"phrase"`
		Value  float64 `json:"value"`
		OK     bool    `json:"ok"`
	}
	err := env.runJSON(&got, "batch", "tasks.txt", "-u", "days")
	require.Error(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].OK)
	assert.Equal(t, 1.0, got[0].Value)
	assert.False(t, got[1].OK)
	assert.Equal(t, 2, got[1].Line)
}
