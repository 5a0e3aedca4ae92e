// explain.go implements the "worthit explain" command, which shows how
// each word of a phrase was read.

package phrase

import (
	"github.com/jpl-au/worthit/cmd"
	"github.com/jpl-au/worthit/internal/explain"
	"github.com/jpl-au/worthit/internal/log"
	"github.com/jpl-au/worthit/internal/validate"
	"github.com/spf13/cobra"
)

func (e *Extension) newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <phrase...>",
		Short: "Show how a phrase is understood",
		Long: `Show how each word of a phrase was classified, what it contributed, and
why the phrase failed to parse if it did. Misspelt words get a suggestion.

  worthit explain every second month
  worthit explain every mnoth

Explaining a phrase that cannot be parsed still succeeds; the report says why.`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runExplain,
	}
}

func (e *Extension) runExplain(_ *cobra.Command, args []string) error {
	phrase := joinArgs(args)

	l := log.Event("phrase:explain", "explain").Input(phrase)

	if err := validate.Phrase(phrase, e.ctx.Config().MaxPhrase()); err != nil {
		l.Write(err)
		return cmd.PrintJSONError(err)
	}

	rep := explain.Explain(phrase)
	if rep.OK() {
		l.Result(*rep.Millis)
	}
	l.Detail("reasons", rep.Reasons).Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(rep)
	}
	rep.Write(cmd.Out())
	return nil
}
