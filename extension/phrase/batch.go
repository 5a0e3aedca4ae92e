// batch.go implements the "worthit batch" command, which parses one phrase
// per line from a file or stdin.

package phrase

import (
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/worthit/cmd"
	"github.com/jpl-au/worthit/extension"
	"github.com/jpl-au/worthit/internal/batch"
	"github.com/jpl-au/worthit/internal/format"
	"github.com/jpl-au/worthit/internal/log"
	"github.com/jpl-au/worthit/internal/progress"
	"github.com/jpl-au/worthit/internal/validate"
	"github.com/spf13/cobra"
)

func (e *Extension) newBatchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "batch [file]",
		Short: "Parse one phrase per line",
		Long: `Parse one phrase per line from a file, or stdin when no file is given.
Blank lines and lines starting with # are skipped.

Output is one tab-separated line per phrase: line number, value, phrase.
Phrases that cannot be parsed show "-" as their value and the command
exits with status 1 after printing every result.

  worthit batch tasks.txt --unit hours
  printf 'every week\n90m\n' | worthit batch -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runBatch,
	}
	addUnitFlag(c)
	c.Flags().IntP(extension.FlagWorkers, "w", 0, "Concurrent workers (default: batch.workers)")
	return c
}

func (e *Extension) runBatch(c *cobra.Command, args []string) error {
	cfg := e.ctx.Config()

	unit, err := unitFlag(c, cfg.Unit())
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	workers, _ := c.Flags().GetInt(extension.FlagWorkers)
	if workers <= 0 {
		workers = cfg.Workers()
	}

	var r io.Reader = c.InOrStdin()
	source := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("opening %s: %w", args[0], err))
		}
		defer f.Close()
		r = f
		source = args[0]
	}

	l := log.Event("phrase:batch", "batch").Unit(unit.String()).Detail("source", source)

	lines, err := batch.ReadPhrases(r)
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(err)
	}
	for _, ln := range lines {
		if err := validate.Phrase(ln.Phrase, cfg.MaxPhrase()); err != nil {
			err = fmt.Errorf("line %d: %w", ln.Number, err)
			l.Write(err)
			return cmd.PrintJSONError(err)
		}
	}

	bar := progress.New("parsing", len(lines))
	results, err := batch.Run(c.Context(), lines, batch.Options{
		Unit:     unit,
		Workers:  workers,
		Progress: bar.Increment,
	})
	bar.Done()
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(err)
	}

	parsed, failed := batch.Summary(results)
	var failErr error
	if failed > 0 {
		failErr = fmt.Errorf("%d of %d phrases could not be parsed", failed, len(results))
	}
	l.Detail("phrases", len(results)).Detail("parsed", parsed).Detail("failed", failed).Write(failErr)

	if cmd.JSON() {
		if results == nil {
			results = []batch.Result{}
		}
		if err := cmd.PrintJSON(results); err != nil {
			return err
		}
	} else {
		format.Batch(cmd.Out(), results, unit)
	}

	if failErr != nil {
		c.SilenceUsage = true
		if cmd.JSON() {
			c.SilenceErrors = true
		}
	}
	return failErr
}
