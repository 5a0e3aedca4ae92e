// Package mcp implements the Model Context Protocol server, letting LLM
// clients parse durations, explain phrases and assess automation ROI
// through worthit's tools.
package mcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/jpl-au/worthit/extension"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve runs the MCP server over stdio until ctx is cancelled or stdin
// closes. Built-in tools (guide, config) are registered first, then tools
// contributed by extensions. stdout carries JSON-RPC, so logger must not
// write there.
func Serve(ctx context.Context, extCtx extension.Context, tools []extension.MCPTool, logger *slog.Logger) error {
	return serve(ctx, extCtx, tools, logger, os.Stdin, os.Stdout)
}

func serve(ctx context.Context, extCtx extension.Context, tools []extension.MCPTool, logger *slog.Logger, in io.Reader, out io.Writer) error {
	s := newServer(extCtx, tools, logger)

	logger.Info("worthit MCP server ready", "version", Version, "transport", "stdio", "tools", len(tools)+len(builtinTools()))

	err := server.NewStdioServer(s).Listen(ctx, in, out)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		logger.Info("server stopped")
		return nil
	}
	return err
}

// handlers gives the built-in tools access to the shared context.
type handlers struct {
	ext    extension.Context
	logger *slog.Logger
}

func newServer(extCtx extension.Context, tools []extension.MCPTool, logger *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"worthit",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s)

	h := &handlers{ext: extCtx, logger: logger}
	for _, t := range builtinTools() {
		s.AddTool(t.Tool, h.bind(t.Handler))
	}
	for _, t := range tools {
		s.AddTool(t.Tool, h.bind(t.Handler))
	}
	return s
}

// bind adapts an extension handler to mcp-go's handler signature.
func (h *handlers) bind(fn extension.MCPHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := fn(ctx, h.ext, req)
		if err != nil {
			h.logger.Error("tool failed", "tool", req.Params.Name, "error", err)
		}
		return res, err
	}
}

// builtinTools are the tools that belong to no extension.
func builtinTools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("worthit_guide",
				mcp.WithDescription("Get help content for worthit phrases, units, ROI and configuration"),
				mcp.WithString("topic", mcp.Description("Guide topic (e.g. 'phrases', 'shorthand', 'roi') or empty for index")),
			),
			Handler: getGuide,
		},
		{
			Tool: mcp.NewTool("worthit_config_get",
				mcp.WithDescription("Get a configuration value"),
				mcp.WithString("key", mcp.Description("Config key (e.g. output.unit, batch.workers) or empty for all")),
			),
			Handler: configGet,
		},
		{
			Tool: mcp.NewTool("worthit_config_set",
				mcp.WithDescription("Set a configuration value"),
				mcp.WithString("key", mcp.Required(), mcp.Description("Config key (e.g. output.unit, batch.workers)")),
				mcp.WithString("value", mcp.Required(), mcp.Description("Value to set")),
				mcp.WithBoolean("local", mcp.Description("Write .worthit/config.yaml in the working directory instead of the global config")),
			),
			Handler: configSet,
		},
	}
}
