// Package batch parses many phrases concurrently while keeping results in
// input order.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jpl-au/worthit/internal/duration"
)

// DefaultWorkers is used when Options.Workers is not positive.
const DefaultWorkers = 4

// Line is one phrase read from input together with its 1-based line number.
type Line struct {
	Number int
	Phrase string
}

// Result is the outcome of parsing one Line. Value is meaningful only when
// OK is true.
type Result struct {
	Line   int     `json:"line"`
	Phrase string  `json:"phrase"`
	Value  float64 `json:"value"`
	OK     bool    `json:"ok"`
}

// Options configures Run.
type Options struct {
	Unit    duration.Unit
	Workers int
	// Progress is called once per parsed phrase, from worker goroutines.
	Progress func()
}

// ReadPhrases reads one phrase per line from r. Blank lines and lines
// starting with '#' are skipped; surrounding whitespace is trimmed.
func ReadPhrases(r io.Reader) ([]Line, error) {
	var lines []Line
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, Line{Number: n, Phrase: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading phrases: %w", err)
	}
	return lines, nil
}

// Run parses lines with at most opts.Workers goroutines. Results are
// returned in the order of lines. Unparsable phrases are reported through
// Result.OK, not as errors; the only error is ctx's.
func Run(ctx context.Context, lines []Line, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	cfg := &duration.Config{OutputUnit: opts.Unit}

	results := make([]Result, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, l := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, ok := duration.Parse(l.Phrase, cfg)
			results[i] = Result{Line: l.Number, Phrase: l.Phrase, Value: v, OK: ok}
			if opts.Progress != nil {
				opts.Progress()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary counts parsed and failed results.
func Summary(results []Result) (parsed, failed int) {
	for _, r := range results {
		if r.OK {
			parsed++
		} else {
			failed++
		}
	}
	return parsed, failed
}
