// Package phrase provides the phrase extension: turning free-text
// durations into numbers.
// Registers commands: parse, explain, batch.
//
// Each command file is separated to isolate its flag handling and output
// formatting. The MCP tools in mcp.go share the same validation so a
// phrase is accepted or rejected identically from every surface.

package phrase

import (
	"fmt"
	"strings"

	"github.com/jpl-au/worthit/extension"
	"github.com/jpl-au/worthit/internal/duration"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the phrase extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "phrase".
func (e *Extension) Name() string { return "phrase" }

// Init keeps the shared context; config is read from it on every call.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the parsing commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newParseCmd(),
		e.newExplainCmd(),
		e.newBatchCmd(),
	}
}

// MCPTools returns worthit_parse and worthit_explain.
func (e *Extension) MCPTools() []extension.MCPTool {
	return tools()
}

// unitFlag resolves the --unit flag, falling back to the configured unit.
func unitFlag(c *cobra.Command, def duration.Unit) (duration.Unit, error) {
	s, _ := c.Flags().GetString(extension.FlagUnit)
	if s == "" {
		return def, nil
	}
	u, err := duration.ParseUnit(s)
	if err != nil {
		return def, fmt.Errorf("--%s: %w", extension.FlagUnit, err)
	}
	return u, nil
}

func addUnitFlag(c *cobra.Command) {
	c.Flags().StringP(extension.FlagUnit, "u", "",
		"Output unit: "+strings.Join(duration.UnitNames(), ", ")+" (default: output.unit)")
}

// joinArgs rebuilds a phrase passed as several unquoted words.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
