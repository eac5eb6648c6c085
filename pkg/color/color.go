// Package color provides terminal color output for hashcalc.
// It respects the NO_COLOR environment variable (https://no-color.org/).
package color

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

var (
	state struct {
		mu      sync.Mutex
		once    sync.Once
		enabled bool
	}
)

// Init initializes the color system based on environment and flags.
// Only the first call inspects the environment.
func Init(noColorFlag bool) {
	state.once.Do(func() {
		disabled := noColorFlag
		if _, exists := os.LookupEnv("NO_COLOR"); exists {
			disabled = true
		}
		if term := os.Getenv("TERM"); term == "dumb" {
			disabled = true
		}
		state.mu.Lock()
		state.enabled = !disabled
		state.mu.Unlock()
	})
}

// Enabled returns true if color output is enabled.
func Enabled() bool {
	Init(false)
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.enabled
}

// Disable turns off color output.
func Disable() {
	Init(false)
	state.mu.Lock()
	state.enabled = false
	state.mu.Unlock()
}

// Enable turns on color output.
func Enable() {
	Init(false)
	state.mu.Lock()
	state.enabled = true
	state.mu.Unlock()
}

// ANSI color codes
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	DimCode = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

type colorFunc func(string) string

func makeColorFunc(codes ...string) colorFunc {
	return func(s string) string {
		if !Enabled() {
			return s
		}
		return strings.Join(codes, "") + s + Reset
	}
}

var (
	Redf    = makeColorFunc(Red)
	Greenf  = makeColorFunc(Green)
	Yellowf = makeColorFunc(Yellow)
	Cyanf   = makeColorFunc(Cyan)
	Boldf   = makeColorFunc(Bold)
	Dimf    = makeColorFunc(DimCode)
)

// Success formats a success message in green.
func Success(s string) string {
	return Greenf(s)
}

// Successf formats a success message with printf-style arguments.
func Successf(format string, args ...any) string {
	return Greenf(fmt.Sprintf(format, args...))
}

// Error formats an error message in red.
func Error(s string) string {
	return Redf(s)
}

// Errorf formats an error message with printf-style arguments.
func Errorf(format string, args ...any) string {
	return Redf(fmt.Sprintf(format, args...))
}

// Warning formats a warning message in yellow.
func Warning(s string) string {
	return Yellowf(s)
}

// Digest formats a hex digest in bold cyan.
func Digest(s string) string {
	if !Enabled() {
		return s
	}
	return Bold + Cyan + s + Reset
}

// Header formats a header in bold.
func Header(s string) string {
	return Boldf(s)
}

// Dim formats dimmed text (for secondary information).
func Dim(s string) string {
	return Dimf(s)
}
