// context.go defines the Context interface for extension access to shared
// state. Commands and MCP handlers read configuration through it rather
// than loading files themselves, so one process sees one consistent config.

package extension

import (
	"sync"

	"github.com/jpl-au/worthit/internal/config"
)

// Context provides extensions controlled access to worthit internals.
type Context interface {
	// Config returns the loaded user configuration.
	Config() *config.Config

	// Reload re-reads configuration from disk. Long-running servers call it
	// after a config change so new values apply without a restart.
	Reload() error
}

// extContext implements Context.
type extContext struct {
	mu  sync.RWMutex
	cfg *config.Config
}

// NewContext creates a new extension context. A nil cfg means defaults.
func NewContext(cfg *config.Config) Context {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &extContext{cfg: cfg}
}

// Config returns the current configuration.
func (c *extContext) Config() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

// Reload loads configuration again; on error the previous config is kept.
func (c *extContext) Reload() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.cfg = cfg
	c.mu.Unlock()
	return nil
}
