// history.go implements the "worthit history" command, which lists recent
// audit log entries.

package core

import (
	"errors"
	"fmt"

	"github.com/jpl-au/worthit/cmd"
	"github.com/jpl-au/worthit/extension"
	"github.com/jpl-au/worthit/internal/format"
	"github.com/jpl-au/worthit/internal/log"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "history",
		Short: "Show recent answers from the audit log",
		Long: `Show recent parse, explain, batch and roi requests, newest first.

Requests from the CLI, MCP server and HTTP API are all recorded while
log.audit is enabled (the default).

  worthit history            # last 20 entries
  worthit history --limit 5`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}
	c.Flags().IntP(extension.FlagLimit, "n", 20, "Maximum number of entries")
	return c
}

func runHistory(c *cobra.Command, _ []string) error {
	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	if limit < 1 {
		return cmd.PrintJSONError(fmt.Errorf("--%s must be at least 1", extension.FlagLimit))
	}

	entries, err := log.Recent(limit)
	if errors.Is(err, log.ErrNotOpen) {
		return cmd.PrintJSONError(fmt.Errorf("audit log is disabled (enable with: worthit config log.audit true)"))
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("reading history: %w", err))
	}

	if cmd.JSON() {
		if entries == nil {
			entries = []log.Entry{}
		}
		return cmd.PrintJSON(entries)
	}
	format.History(cmd.Out(), entries)
	return nil
}
