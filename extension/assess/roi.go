// roi.go implements the "worthit roi" command.
//
// All four durations are phrases, so "every week", "30 minutes" and "1d"
// are all accepted. Every bad field is reported at once rather than one
// per run.

package assess

import (
	"github.com/jpl-au/worthit/cmd"
	"github.com/jpl-au/worthit/extension"
	"github.com/jpl-au/worthit/internal/duration"
	"github.com/jpl-au/worthit/internal/format"
	"github.com/jpl-au/worthit/internal/log"
	"github.com/jpl-au/worthit/internal/roi"
	"github.com/spf13/cobra"
)

func (e *Extension) newROICmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "roi",
		Short: "Decide whether automating a task pays off",
		Long: `Work out how long automating a recurring task takes to pay for itself.

  worthit roi --every "every week" --spent 30m --saved 20m --automate 4h
  worthit roi --every "twice a day" --spent "5 minutes" --saved 5m --automate 2d --report

--every     how often the task recurs
--spent     how long the task takes each time
--saved     how much of that automation would save
--automate  how long automating it would take

The verdict is banded by months until break-even:
under 6 yes, under 12 probably, under 24 maybe, under 60 probably not,
otherwise no.`,
		Args: cobra.NoArgs,
		RunE: e.runROI,
	}
	c.Flags().StringP(extension.FlagEvery, "e", "", "How often the task recurs")
	c.Flags().StringP(extension.FlagSpent, "s", "", "Time the task takes each run")
	c.Flags().StringP(extension.FlagSaved, "v", "", "Time saved each run once automated")
	c.Flags().StringP(extension.FlagAutomate, "a", "", "Time needed to automate the task")
	c.Flags().BoolP(extension.FlagReport, "r", false, "Render a markdown report")
	for _, f := range []string{extension.FlagEvery, extension.FlagSpent, extension.FlagSaved, extension.FlagAutomate} {
		_ = c.MarkFlagRequired(f)
	}
	return c
}

func (e *Extension) runROI(c *cobra.Command, _ []string) error {
	var p roi.Phrases
	p.Every, _ = c.Flags().GetString(extension.FlagEvery)
	p.Spent, _ = c.Flags().GetString(extension.FlagSpent)
	p.Saved, _ = c.Flags().GetString(extension.FlagSaved)
	p.Automate, _ = c.Flags().GetString(extension.FlagAutomate)
	report, _ := c.Flags().GetBool(extension.FlagReport)

	res, err := assess("assess:roi", p, e.ctx.Config().MaxPhrase())
	if err != nil {
		c.SilenceUsage = true
		return cmd.PrintJSONError(err)
	}

	switch {
	case cmd.JSON():
		return cmd.PrintJSON(res)
	case report:
		format.Markdown(cmd.Out(), format.Report(p, res))
	default:
		format.ROI(cmd.Out(), res)
	}
	return nil
}

// assess validates and assesses p, recording the outcome under source.
func assess(source string, p roi.Phrases, maxPhrase int) (roi.Result, error) {
	l := log.Event(source, "assess").
		Detail("every", p.Every).
		Detail("spent", p.Spent).
		Detail("saved", p.Saved).
		Detail("automate", p.Automate)

	if err := p.Validate(maxPhrase); err != nil {
		l.Write(err)
		return roi.Result{}, err
	}
	res, err := roi.AssessPhrases(p)
	if err != nil {
		l.Write(err)
		return roi.Result{}, err
	}
	l.Result(res.MonthsUntilROI).Unit(duration.Months.String()).
		Detail("recommendation", res.Recommendation).
		Write(nil)
	return res, nil
}
