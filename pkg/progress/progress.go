// Package progress provides byte-level progress reporting for long reads.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Callback receives progress updates after each chunk. current is the number
// of bytes processed so far and total the size captured when the operation
// started; current may exceed total if the source grew meanwhile.
type Callback func(op string, current, total int64, message string)

// Noop is a no-op callback for default behavior.
func Noop(op string, current, total int64, message string) {}

// Progress tracks operation progress.
type Progress struct {
	Op      string
	Total   int64
	current int64
	cb      Callback
}

// New creates a new Progress tracker.
func New(op string, total int64, cb Callback) *Progress {
	if cb == nil {
		cb = Noop
	}
	return &Progress{Op: op, Total: total, cb: cb}
}

// Add advances the progress by n bytes and calls the callback.
func (p *Progress) Add(n int64, message string) {
	p.current += n
	p.cb(p.Op, p.current, p.Total, message)
}

// Current returns the current progress value.
func (p *Progress) Current() int64 {
	return p.current
}

// DefaultRedrawInterval bounds how often a terminal bar is redrawn.
const DefaultRedrawInterval = 100 * time.Millisecond

// Terminal provides a terminal-based progress bar scaled to a byte total.
type Terminal struct {
	writer      io.Writer
	op          string
	total       atomic.Int64
	current     atomic.Int64
	lastLineLen atomic.Int64
	enabled     atomic.Bool
	redraw      *rate.Sometimes
}

// NewTerminal creates a new terminal progress bar writing to stderr.
// total is replaced by the total carried in each callback.
func NewTerminal(op string, total int64, enabled bool) *Terminal {
	return NewTerminalWriter(os.Stderr, op, total, enabled)
}

// NewTerminalWriter creates a terminal progress bar writing to w.
func NewTerminalWriter(w io.Writer, op string, total int64, enabled bool) *Terminal {
	t := &Terminal{
		writer: w,
		op:     op,
		redraw: &rate.Sometimes{Interval: DefaultRedrawInterval},
	}
	t.total.Store(total)
	t.enabled.Store(enabled)
	return t
}

// Callback returns a Callback function for this terminal. Redraws are
// throttled so the read loop is never slowed by terminal output.
func (t *Terminal) Callback() Callback {
	return func(op string, current, total int64, message string) {
		if !t.enabled.Load() {
			return
		}
		t.current.Store(current)
		t.total.Store(total)
		t.redraw.Do(func() { t.render(message) })
	}
}

func (t *Terminal) render(message string) {
	current := t.current.Load()
	startTotal := t.total.Load()
	total := startTotal
	if total <= 0 {
		total = 1
	}

	percentage := float64(current) / float64(total) * 100

	barWidth := 30
	filled := int(float64(barWidth) * float64(current) / float64(total))
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("=", filled) + strings.Repeat(" ", barWidth-filled)

	clear := "\r"
	if lastLen := t.lastLineLen.Load(); lastLen > 0 {
		clear = "\r" + strings.Repeat(" ", int(lastLen)) + "\r"
	}

	line := fmt.Sprintf("%s [%s] %s/%s (%.2f%%)", t.op, bar, HumanBytes(current), HumanBytes(startTotal), percentage)
	if message != "" {
		line += " " + message
	}

	fmt.Fprint(t.writer, clear+line)
	t.lastLineLen.Store(int64(len(line)))
}

// Done draws the final state and prints a newline. The bar shows the bytes
// actually processed, which may differ from the starting total.
func (t *Terminal) Done(message string) {
	if !t.enabled.Load() {
		return
	}
	t.render(message)
	fmt.Fprintln(t.writer)
}

// SetEnabled enables or disables the progress bar.
func (t *Terminal) SetEnabled(enabled bool) {
	t.enabled.Store(enabled)
}

// IsEnabled returns whether the progress bar is enabled.
func (t *Terminal) IsEnabled() bool {
	return t.enabled.Load()
}

// CountingTerminal reports a running byte count when the total isn't known
// upfront, such as when hashing standard input.
type CountingTerminal struct {
	writer  io.Writer
	op      string
	current atomic.Int64
	enabled atomic.Bool
	redraw  *rate.Sometimes
}

// NewCountingTerminal creates a new counting progress line writing to w.
func NewCountingTerminal(w io.Writer, op string, enabled bool) *CountingTerminal {
	t := &CountingTerminal{
		writer: w,
		op:     op,
		redraw: &rate.Sometimes{Interval: DefaultRedrawInterval},
	}
	t.enabled.Store(enabled)
	return t
}

// Callback returns a Callback function for this counter.
func (t *CountingTerminal) Callback() Callback {
	return func(op string, current, total int64, message string) {
		if !t.enabled.Load() {
			return
		}
		t.current.Store(current)
		t.redraw.Do(t.render)
	}
}

func (t *CountingTerminal) render() {
	fmt.Fprintf(t.writer, "\r%s... %s", t.op, HumanBytes(t.current.Load()))
}

// Done marks the operation as complete.
func (t *CountingTerminal) Done(finalMessage string) {
	if !t.enabled.Load() {
		return
	}
	clear := "\r" + strings.Repeat(" ", len(t.op)+16) + "\r"
	if finalMessage != "" {
		fmt.Fprint(t.writer, clear+finalMessage+"\n")
		return
	}
	fmt.Fprintf(t.writer, "%s%s complete (%s)\n", clear, t.op, HumanBytes(t.current.Load()))
}

// HumanBytes renders a byte count with a binary unit suffix.
func HumanBytes(v int64) string {
	if v < 0 {
		v = 0
	}
	units := []string{"B", "KB", "MB", "GB", "TB"}
	val := float64(v)
	u := 0
	for val >= 1024 && u < len(units)-1 {
		val /= 1024
		u++
	}
	return fmt.Sprintf("%.1f%s", val, units[u])
}
