// guide.go implements the "worthit guide" command.
//
// Guides are embedded in the binary. Terminal output is rendered with
// glamour; pipes get raw markdown so the guide can be fed to an LLM.

package core

import (
	"fmt"
	"strings"

	"github.com/jpl-au/worthit/cmd"
	"github.com/jpl-au/worthit/guide"
	"github.com/jpl-au/worthit/internal/format"
	"github.com/spf13/cobra"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the worthit usage guide",
		Long: `Outputs the worthit guide for LLMs and humans.

  worthit guide            # main guide
  worthit guide phrases    # what phrases are understood
  worthit guide shorthand  # compact forms such as 90m`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]string{"topic": name, "content": content})
			}
			format.Markdown(cmd.Out(), content)
			return nil
		},
	}
}
