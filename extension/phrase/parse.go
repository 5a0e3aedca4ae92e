// parse.go implements the "worthit parse" command.

package phrase

import (
	"fmt"

	"github.com/jpl-au/worthit/cmd"
	"github.com/jpl-au/worthit/internal/duration"
	"github.com/jpl-au/worthit/internal/format"
	"github.com/jpl-au/worthit/internal/log"
	"github.com/jpl-au/worthit/internal/validate"
	"github.com/spf13/cobra"
)

// ParseResult is the JSON output of parse.
type ParseResult struct {
	Phrase string  `json:"phrase"`
	Unit   string  `json:"unit"`
	Value  float64 `json:"value"`
}

func (e *Extension) newParseCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "parse <phrase...>",
		Short: "Convert a duration phrase to a number",
		Long: `Convert a natural-language duration or shorthand to a number.

  worthit parse every second month
  worthit parse "twice a week" --unit days
  worthit parse 90m -u hours

Quoting is optional; all arguments are joined with spaces.
A phrase that cannot be parsed exits with status 1. Run
"worthit explain <phrase>" to see why.`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runParse,
	}
	addUnitFlag(c)
	return c
}

func (e *Extension) runParse(c *cobra.Command, args []string) error {
	cfg := e.ctx.Config()
	phrase := joinArgs(args)

	unit, err := unitFlag(c, cfg.Unit())
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	l := log.Event("phrase:parse", "parse").Input(phrase).Unit(unit.String())

	if err := validate.Phrase(phrase, cfg.MaxPhrase()); err != nil {
		l.Write(err)
		return cmd.PrintJSONError(err)
	}

	v, ok := duration.Parse(phrase, &duration.Config{OutputUnit: unit})
	if !ok {
		err := fmt.Errorf("%w: %q", validate.ErrUnparsable, phrase)
		l.Write(err)
		return cmd.PrintJSONError(err)
	}
	l.Result(v).Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(ParseResult{Phrase: phrase, Unit: unit.String(), Value: v})
	}
	fmt.Fprintln(cmd.Out(), format.Value(v, unit))
	return nil
}
