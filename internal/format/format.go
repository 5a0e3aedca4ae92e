// Package format provides output formatting for CLI display, keeping
// presentation out of the command implementations.
package format

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"github.com/jpl-au/worthit/internal/batch"
	"github.com/jpl-au/worthit/internal/duration"
	"github.com/jpl-au/worthit/internal/log"
	"github.com/jpl-au/worthit/internal/roi"
)

// Number formats v with up to four decimals and no trailing zeros.
func Number(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Value formats v followed by its unit, e.g. "24 hours".
func Value(v float64, u duration.Unit) string {
	return Number(v) + " " + u.String()
}

// Batch prints one line per result: value and phrase separated by a tab,
// or "-" for phrases that could not be parsed.
func Batch(w io.Writer, results []batch.Result, u duration.Unit) {
	for _, r := range results {
		v := "-"
		if r.OK {
			v = Value(r.Value, u)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", r.Line, v, r.Phrase)
	}
}

// History prints audit entries as a table, newest first.
func History(w io.Writer, entries []log.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no history")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"TIME", "SOURCE", "INPUT", "RESULT", "STATUS"})
	table.SetAutoWrapText(false)
	for _, e := range entries {
		result := "-"
		if e.Result != nil {
			result = Number(*e.Result)
			if e.Unit != "" {
				result += " " + e.Unit
			}
		}
		status := "ok"
		if !e.Success {
			status = e.Error
		}
		input := e.Input
		if input == "" {
			input = "-"
		}
		table.Append([]string{
			e.Start.Local().Format("2006-01-02 15:04:05"),
			e.Source,
			input,
			result,
			status,
		})
	}
	table.Render()
}

// bandColours maps each recommendation to its terminal colour.
var bandColours = map[roi.Recommendation]*color.Color{
	roi.Yes:         color.New(color.FgGreen, color.Bold),
	roi.Probably:    color.New(color.FgGreen),
	roi.Maybe:       color.New(color.FgYellow),
	roi.ProbablyNot: color.New(color.FgRed),
	roi.No:          color.New(color.FgRed, color.Bold),
}

// Headline returns the recommendation's headline, coloured by band when
// colour output is enabled.
func Headline(rec roi.Recommendation) string {
	c, ok := bandColours[rec]
	if !ok {
		return rec.Headline()
	}
	return c.Sprint(rec.Headline())
}

// ROI prints an assessment as plain text.
func ROI(w io.Writer, res roi.Result) {
	fmt.Fprintln(w, Headline(res.Recommendation))
	fmt.Fprintf(w, "Recommendation:      %s\n", res.Recommendation)
	fmt.Fprintf(w, "Time until ROI:      %s\n", res.ROI)
	fmt.Fprintf(w, "Time spent per year: %s hours\n", Number(math.Round(res.HoursSpentPerYear()*10)/10))
	fmt.Fprintf(w, "Time saved per year: %s hours\n", Number(math.Round(res.HoursSavedPerYear()*10)/10))
}

// Report returns a markdown report of an assessment and the phrases it
// was made from.
func Report(p roi.Phrases, res roi.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Should you automate it?\n\n")
	fmt.Fprintf(&b, "**%s**\n\n", res.Recommendation.Headline())
	fmt.Fprintf(&b, "| Task | |\n|------|---|\n")
	fmt.Fprintf(&b, "| Happens | %s |\n", p.Every)
	fmt.Fprintf(&b, "| Takes | %s |\n", p.Spent)
	fmt.Fprintf(&b, "| Automation saves | %s |\n", p.Saved)
	fmt.Fprintf(&b, "| Automating takes | %s |\n\n", p.Automate)
	fmt.Fprintf(&b, "## Outcome\n\n")
	fmt.Fprintf(&b, "- Recommendation: **%s**\n", res.Recommendation)
	fmt.Fprintf(&b, "- Time until ROI: %s\n", res.ROI)
	fmt.Fprintf(&b, "- Time spent per year: %s hours\n", Number(math.Round(res.HoursSpentPerYear()*10)/10))
	fmt.Fprintf(&b, "- Time saved per year: %s hours\n", Number(math.Round(res.HoursSavedPerYear()*10)/10))
	return b.String()
}

// Markdown writes content to w, rendered with glamour when stdout is a
// terminal and as raw markdown otherwise.
func Markdown(w io.Writer, content string) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		rendered, err := glamour.Render(content, "dark")
		if err == nil {
			fmt.Fprint(w, rendered)
			return
		}
	}
	fmt.Fprint(w, content)
}
