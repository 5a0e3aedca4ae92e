// Package progress draws a single-line counter on stderr while a batch of
// phrases is parsed. Nothing is drawn when stderr is not a terminal, so
// piped and scripted runs stay clean.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// minItems is the smallest batch that gets a progress line.
const minItems = 5

// Bar counts completed items. It is safe for concurrent use by the batch
// workers.
type Bar struct {
	mu      sync.Mutex
	w       io.Writer
	label   string
	total   int
	current int
	enabled bool
	width   int
}

// New returns a Bar writing to stderr. It draws only when stderr is a
// terminal and total is at least minItems.
func New(label string, total int) *Bar {
	return NewWriter(os.Stderr, label, total, term.IsTerminal(int(os.Stderr.Fd())))
}

// NewWriter returns a Bar writing to w. tty forces terminal behaviour on or
// off.
func NewWriter(w io.Writer, label string, total int, tty bool) *Bar {
	return &Bar{
		w:       w,
		label:   label,
		total:   total,
		enabled: tty && total >= minItems,
	}
}

// Increment records one completed item and redraws the line.
func (b *Bar) Increment() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current++
	if !b.enabled {
		return
	}
	pct := (b.current * 100) / b.total
	line := fmt.Sprintf("%s... %d/%d (%d%%)", b.label, b.current, b.total, pct)
	b.width = max(b.width, len(line))
	fmt.Fprintf(b.w, "\r%s", line)
}

// Current reports how many items have completed.
func (b *Bar) Current() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Done clears the line so final output starts at column zero.
func (b *Bar) Done() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.enabled || b.width == 0 {
		return
	}
	fmt.Fprintf(b.w, "\r%s\r", strings.Repeat(" ", b.width))
}
