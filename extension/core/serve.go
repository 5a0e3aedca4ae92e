// serve.go implements the "worthit serve" command.
//
// By default it runs an MCP server over stdio. With --http it serves the
// JSON API instead. Both block until interrupted.

package core

import (
	"github.com/jpl-au/worthit/cmd"
	"github.com/jpl-au/worthit/extension"
	"github.com/jpl-au/worthit/internal/httpapi"
	"github.com/jpl-au/worthit/internal/logger"
	"github.com/jpl-au/worthit/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP or HTTP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration,
or an HTTP JSON API with --http.

  worthit serve                          # MCP over stdio
  worthit serve --http                   # HTTP on serve.addr
  worthit serve --http --addr :9090      # HTTP on another address

Server logs go to stderr, or to log.file when it is set.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	c.Flags().Bool(extension.FlagHTTP, false, "Serve the HTTP JSON API instead of MCP")
	c.Flags().String(extension.FlagAddr, "", "HTTP listen address (default: serve.addr)")
	return c
}

func runServe(c *cobra.Command, _ []string) error {
	extCtx := cmd.Context()
	cfg := extCtx.Config()

	useHTTP, _ := c.Flags().GetBool(extension.FlagHTTP)
	addr, _ := c.Flags().GetString(extension.FlagAddr)
	if addr == "" {
		addr = cfg.Addr()
	}

	l, closeLog := logger.New(logger.Options{
		File:       cfg.LogFile(),
		MaxSizeMB:  cfg.MaxSizeMB(),
		MaxBackups: cfg.MaxBackups(),
	})
	defer closeLog()

	if useHTTP {
		return httpapi.Serve(c.Context(), addr, httpapi.New(extCtx, l).Router(), l)
	}
	return mcp.Serve(c.Context(), extCtx, extension.Tools(), l)
}
