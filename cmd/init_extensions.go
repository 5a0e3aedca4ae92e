/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Extensions register during init() but the shared Context is not built
// until the first command runs. This lets every command be declared before
// configuration is read, and lets bootstrap commands skip reading it.

package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/jpl-au/worthit/extension"
	"github.com/jpl-au/worthit/internal/config"
	"github.com/jpl-au/worthit/internal/log"
)

// bootstrapCommands lists commands that run without loading config.
// Built from the cobra built-ins plus extension-declared bootstrap commands.
var bootstrapCommands map[string]bool

func buildBootstrapCommands() map[string]bool {
	cmds := map[string]bool{
		"help":       true,
		"completion": true,
	}

	for _, ext := range extension.All() {
		if b, ok := ext.(extension.Bootstrap); ok {
			for _, name := range b.BootstrapCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads configuration once per process, opens the audit log
// when it is enabled and hands the shared Context to every Initializable
// extension. A broken config is returned as an error; a missing one yields
// defaults.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = fmt.Errorf("loading config: %w", err)
			return
		}
		extContext = extension.NewContext(cfg)
		OpenAudit(cfg)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// OpenAudit opens the audit log when cfg enables it. Failure only warns:
// a command should not fail because its history could not be recorded.
func OpenAudit(cfg *config.Config) {
	if !cfg.Audit() {
		return
	}
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		return
	}
	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}
}

// Context returns the shared extension context. Bootstrap commands, which
// run before config is loaded, receive defaults.
func Context() extension.Context {
	if extContext == nil {
		return extension.NewContext(nil)
	}
	return extContext
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		bootstrapCommands = buildBootstrapCommands()
	})
}
