// tools_config.go implements MCP tools for configuration management.
// A successful set reloads the shared context so the running server picks
// up the new value immediately.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/worthit/extension"
	"github.com/jpl-au/worthit/internal/config"
	"github.com/jpl-au/worthit/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// configGet handles worthit_config_get tool calls.
func configGet(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := extCtx.Config()

	key := extension.StringArg(req, "key", "")
	if key == "" {
		log.Event("mcp:worthit_config_get", "list").Write(nil)
		return extension.JSONResult(cfg.All())
	}

	v, err := cfg.Get(key)

	log.Event("mcp:worthit_config_get", "get").Detail("key", key).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(map[string]string{key: v})
}

// configSet handles worthit_config_set tool calls.
func configSet(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("key is required"), nil //nolint:nilerr
	}
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}

	scope := config.ScopeGlobal
	if extension.BoolArg(req, "local", false) {
		scope = config.ScopeLocal
	}

	l := log.Event("mcp:worthit_config_set", "set").Detail("key", key).Detail("value", value)

	cfg, err := config.LoadScope(scope)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := cfg.Set(key, value); err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	err = cfg.Save()
	l.Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := extCtx.Reload(); err != nil {
		log.Event("mcp:worthit_config_set", "reload").Write(err)
		return mcp.NewToolResultText(fmt.Sprintf("%s = %s (warning: reload failed, restart server to apply: %v)", key, value, err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s = %s", key, value)), nil
}
