// mcp.go defines types for MCP tool registration by extensions, plus the
// parameter helpers every tool handler shares.
//
// Parameter extraction is permissive: a missing or mistyped optional
// argument yields the default rather than an error, because LLM clients
// often omit optional parameters or send them in an unexpected type.

package extension

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool pairs an MCP tool definition with its handler.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler processes MCP tool requests.
// The Context provides access to the loaded configuration.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

// StringArg returns the named string argument, or def if it is missing or
// not a string.
func StringArg(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// BoolArg returns the named boolean argument. A JSON string "true" or
// "false" is accepted as well as a real boolean.
func BoolArg(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	switch v := args[name].(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// IntArg returns the named integer argument. JSON numbers decode as
// float64, so that is what is asserted.
func IntArg(req mcp.CallToolRequest, name string, def int) int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}

// JSONResult serialises v as indented JSON in a text result. Marshal
// failures become error results so every failure reaches the client the
// same way.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
