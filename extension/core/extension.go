// Package core provides the core extension for worthit.
// It registers commands: config, guide, history, serve, version.
package core

import (
	"github.com/jpl-au/worthit/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

var (
	_ extension.Extension = (*Extension)(nil)
	_ extension.Bootstrap = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the commands that manage worthit itself rather than
// answer questions about durations.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newGuideCmd(),
		newHistoryCmd(),
		newServeCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil. The server registers its own config and guide tools.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// BootstrapCommands returns commands that must work without a valid config.
// config reports its own load errors rather than failing in PersistentPreRunE.
func (e *Extension) BootstrapCommands() []string {
	return []string{"config", "guide", "version"}
}
