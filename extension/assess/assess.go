// Package assess provides the assess extension, which answers "is it worth
// automating this task?".
// Registers commands: roi.
package assess

import (
	"github.com/jpl-au/worthit/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the assess extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "assess".
func (e *Extension) Name() string { return "assess" }

// Init keeps the shared context.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the roi command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{e.newROICmd()}
}

// MCPTools returns worthit_roi.
func (e *Extension) MCPTools() []extension.MCPTool {
	return tools()
}
