// Package extension provides the plugin architecture for worthit. Extensions
// group related functionality (commands, MCP tools) and register at init
// time, so new surfaces can be added without touching the root command.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for worthit extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable is an optional interface for extensions that need the
// shared Context. Init is called once, after config is loaded and before
// the first non-bootstrap command runs.
type Initializable interface {
	Init(ctx Context) error
}

// Bootstrap is an optional interface for extensions with commands that
// must run before configuration is loaded. Commands returned by
// BootstrapCommands() skip config loading and audit logging in
// PersistentPreRunE, so they keep working when the config file is broken.
type Bootstrap interface {
	BootstrapCommands() []string
}

// Tools collects the MCP tools of every registered extension in
// registration order.
func Tools() []MCPTool {
	var tools []MCPTool
	for _, ext := range All() {
		tools = append(tools, ext.MCPTools()...)
	}
	return tools
}
