package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("get all shows defaults", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config")
		env.contains(out, "output.unit: milliseconds")
		env.contains(out, "batch.workers: 4")
		env.contains(out, "serve.addr: 127.0.0.1:8080")
		env.contains(out, "log.audit: true")
	})

	t.Run("get single key after set", func(t *testing.T) {
		env := newTestEnv(t)

		env.equals(env.run("config", "output.unit", "h"), "output.unit = hours (global)")
		env.equals(env.run("config", "output.unit"), "hours")
		assert.FileExists(t, filepath.Join(env.home, ".worthit", "config.yaml"))
	})
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"output.unit", "Days", "days"},
		{"batch.workers", "8", "8"},
		{"limits.max_phrase", "1024", "1024"},
		{"serve.addr", ":9090", ":9090"},
		{"log.audit", "false", "false"},
		{"log.max_backups", "0", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			env := newTestEnv(t)

			env.run("config", tc.key, tc.value)
			env.equals(env.run("config", tc.key), tc.want)
		})
	}
}

func TestConfig_Local(t *testing.T) {
	env := newTestEnv(t)

	env.run("config", "output.unit", "days")
	env.equals(env.run("config", "--local", "output.unit", "hours"), "output.unit = hours (local)")
	assert.FileExists(t, filepath.Join(env.dir, ".worthit", "config.yaml"))

	// The local file replaces the global one for every command.
	env.equals(env.run("config", "output.unit"), "hours")
	env.equals(env.run("parse", "every day"), "24 hours")
}

func TestConfig_Errors(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"invalid key", []string{"config", "invalid.key", "value"}, "unknown config key"},
		{"invalid unit", []string{"config", "output.unit", "fortnights"}, "invalid config value"},
		{"workers out of range", []string{"config", "batch.workers", "0"}, "invalid config value"},
		{"addr without port", []string{"config", "serve.addr", "localhost"}, "host:port"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := env.runErr(tc.args...)
			require.Error(t, err)
			env.contains(out, tc.want)
		})
	}
}

func TestConfig_BrokenFile(t *testing.T) {
	env := newTestEnv(t)
	dir := filepath.Join(env.home, ".worthit")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("batch:\n  workers: 0\n"), 0644))

	// Commands that need config refuse to run...
	out, err := env.runErr("parse", "every day")
	require.Error(t, err)
	env.contains(out, "loading config")

	// ...but bootstrap commands still work.
	env.run("guide")
	env.run("version")
}

func TestConfig_JSON(t *testing.T) {
	env := newTestEnv(t)

	var all map[string]string
	require.NoError(t, env.runJSON(&all, "config"))
	assert.Equal(t, "milliseconds", all["output.unit"])

	var one map[string]string
	require.NoError(t, env.runJSON(&one, "config", "batch.workers", "2"))
	assert.Equal(t, map[string]string{"key": "batch.workers", "value": "2", "scope": "global"}, one)
}
