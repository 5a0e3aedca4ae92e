// mcp.go defines the worthit_roi MCP tool.

package assess

import (
	"context"

	"github.com/jpl-au/worthit/extension"
	"github.com/jpl-au/worthit/internal/roi"
	"github.com/mark3labs/mcp-go/mcp"
)

func tools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("worthit_roi",
				mcp.WithDescription("Decide whether automating a recurring task pays off. All arguments are duration phrases such as 'every week' or '30m'"),
				mcp.WithString("every", mcp.Required(), mcp.Description("How often the task recurs")),
				mcp.WithString("spent", mcp.Required(), mcp.Description("How long the task takes each time")),
				mcp.WithString("saved", mcp.Required(), mcp.Description("How much time automation saves each time")),
				mcp.WithString("automate", mcp.Required(), mcp.Description("How long automating the task would take")),
			),
			Handler: roiTool,
		},
	}
}

// roiTool handles worthit_roi tool calls. Missing arguments fall through to
// validation so the client hears about all of them at once.
func roiTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := roi.Phrases{
		Every:    extension.StringArg(req, "every", ""),
		Spent:    extension.StringArg(req, "spent", ""),
		Saved:    extension.StringArg(req, "saved", ""),
		Automate: extension.StringArg(req, "automate", ""),
	}

	res, err := assess("mcp:worthit_roi", p, extCtx.Config().MaxPhrase())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(res)
}
