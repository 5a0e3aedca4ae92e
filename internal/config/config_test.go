package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/worthit/internal/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestDefaults(t *testing.T) {
	c := &Config{}
	assert.Equal(t, duration.Milliseconds, c.Unit())
	assert.Equal(t, DefaultWorkers, c.Workers())
	assert.Equal(t, DefaultMaxPhrase, c.MaxPhrase())
	assert.Equal(t, DefaultAddr, c.Addr())
	assert.True(t, c.Audit())
	assert.Empty(t, c.LogFile())
	assert.Equal(t, DefaultMaxSizeMB, c.MaxSizeMB())
	assert.Equal(t, DefaultMaxBackups, c.MaxBackups())

	for _, k := range ValidKeys() {
		assert.False(t, c.IsSet(k), k)
	}
}

func TestSetGet(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"output.unit", "h", "hours"},
		{"output.unit", "Days", "days"},
		{"batch.workers", "8", "8"},
		{"limits.max_phrase", "512", "512"},
		{"serve.addr", ":9090", ":9090"},
		{"log.audit", "FALSE", "false"},
		{"log.file", "/tmp/worthit.log", "/tmp/worthit.log"},
		{"log.max_size_mb", "50", "50"},
		{"log.max_backups", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			c := &Config{}
			require.NoError(t, c.Set(tt.key, tt.value))
			got, err := c.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, c.IsSet(tt.key))
			assert.NoError(t, c.Validate())
		})
	}
}

func TestSet_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"output.unit", "fortnights"},
		{"batch.workers", "0"},
		{"batch.workers", "many"},
		{"limits.max_phrase", "-1"},
		{"serve.addr", "localhost"},
		{"log.audit", "yes"},
		{"log.max_size_mb", "0"},
		{"log.max_backups", "101"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			c := &Config{}
			err := c.Set(tt.key, tt.value)
			assert.ErrorIs(t, err, ErrInvalidValue)
			assert.False(t, c.IsSet(tt.key))
		})
	}
}

func TestUnknownKey(t *testing.T) {
	c := &Config{}
	_, err := c.Get("author.name")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.ErrorIs(t, c.Set("author.name", "x"), ErrUnknownKey)
	assert.False(t, c.IsSet("author.name"))
	assert.False(t, IsValidKey("author.name"))
	assert.True(t, IsValidKey("batch.workers"))
}

func TestAll(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Set("batch.workers", "2"))
	all := c.All()
	assert.Len(t, all, len(ValidKeys()))
	assert.Equal(t, "2", all["batch.workers"])
	assert.Equal(t, "milliseconds", all["output.unit"])
}

func TestSaveLoad_Global(t *testing.T) {
	home := isolate(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, c.Scope())

	require.NoError(t, c.Set("batch.workers", "6"))
	require.NoError(t, c.Save())
	assert.FileExists(t, filepath.Join(home, DirName, "config.yaml"))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6, loaded.Workers())
}

func TestLoad_LocalOverridesGlobal(t *testing.T) {
	isolate(t)

	global := &Config{}
	require.NoError(t, global.Set("batch.workers", "2"))
	require.NoError(t, global.SaveScope(ScopeGlobal))

	local := &Config{}
	require.NoError(t, local.Set("batch.workers", "9"))
	require.NoError(t, local.SaveScope(ScopeLocal))

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, c.Scope())
	assert.Equal(t, 9, c.Workers())
}

func TestLoad_Malformed(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, DirName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("batch: [\n"), 0644))

	_, err := Load()
	assert.ErrorContains(t, err, "malformed config file")
}

func TestLoad_OutOfRange(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, DirName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("batch:\n  workers: 0\n"), 0644))

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidValue)
}
