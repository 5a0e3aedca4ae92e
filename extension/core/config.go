// config.go implements the "worthit config" command.
//
// Config follows a cascade similar to git: a local .worthit/config.yaml
// replaces the global ~/.worthit/config.yaml when present. Writes go back
// to whichever file was read; --local forces the local file even before it
// exists.

package core

import (
	"fmt"

	"github.com/jpl-au/worthit/cmd"
	"github.com/jpl-au/worthit/extension"
	"github.com/jpl-au/worthit/internal/config"
	"github.com/jpl-au/worthit/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  worthit config                    # show config
  worthit config output.unit        # show output.unit
  worthit config output.unit hours  # set output.unit

Configuration locations:
  Global: ~/.worthit/config.yaml
  Local:  .worthit/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.worthit/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}
	cmd.OpenAudit(cfg)

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		if cmd.JSON() {
			log.Event("core:config", "list").Write(nil)
			return cmd.PrintJSON(cfg.All())
		}
		for _, k := range config.ValidKeys() {
			v, _ := cfg.Get(k)
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, v)
		}
		log.Event("core:config", "list").Write(nil)

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{"key": args[0], "value": v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Detail("key", args[0]).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("core:config", "set").Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return cmd.PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		v, _ := cfg.Get(args[0])
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{"key": args[0], "value": v, "scope": scopeName})
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], v, scopeName)
	}
	return nil
}
