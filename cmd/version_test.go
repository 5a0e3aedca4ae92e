package cmd

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:")
	env.contains(out, runtime.GOOS)

	var got map[string]string
	require.NoError(t, env.runJSON(&got, "version"))
	assert.Equal(t, runtime.Version(), got["go_version"])
}

func TestRoot_InvalidOutput(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("parse", "every day", "-o", "yaml")
	require.Error(t, err)
	env.contains(out, "invalid output format")
}
