package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestGet_Defaults(t *testing.T) {
	withBuildInfo(t, nil)

	i := Get()
	assert.Equal(t, "dev", i.BuildTag)
	assert.Equal(t, "unknown", i.GitCommit)
	assert.Equal(t, runtime.Version(), i.GoVersion)
	assert.Equal(t, "dev", Short())
	assert.Contains(t, i.String(), "Build Tag:    dev")
}

func TestGet_BuildInfo(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/jpl-au/worthit", Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-15T10:30:00Z"},
		},
	})

	i := Get()
	assert.Equal(t, "v1.2.3", i.BuildTag)
	assert.Equal(t, "0123456", i.GitCommit)
	assert.Equal(t, "2026-01-15T10:30:00Z", i.BuildTime)
}

func TestGet_LdflagsWin(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})

	orig := Version
	Version = "v9.9.9"
	defer func() { Version = orig }()

	assert.Equal(t, "v9.9.9", Get().BuildTag)
}
