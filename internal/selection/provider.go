// Package selection supplies the algorithm, file path and optional reference
// digest for one hashing run, from flags, text prompts or native dialogs.
package selection

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/term"

	"github.com/hashcalc-project/hashcalc/pkg/errclass"
	"github.com/hashcalc-project/hashcalc/pkg/model"
)

// Provider supplies the inputs of a hashing run. File returns "" when the
// user declined to pick a file.
type Provider interface {
	Algorithm(ctx context.Context) (model.Algorithm, error)
	File(ctx context.Context, alg model.Algorithm) (string, error)
	Reference(ctx context.Context, alg model.Algorithm) (string, error)
}

// Surface is a kind of selection provider.
type Surface string

const (
	SurfaceGUI   Surface = "gui"
	SurfaceTUI   Surface = "tui"
	SurfaceFlags Surface = "flags"
)

// Env describes the interactive capabilities of the running process.
type Env struct {
	GOOS     string
	Getenv   func(string) string
	StdinTTY bool
}

// CurrentEnv inspects the running process.
func CurrentEnv() Env {
	return Env{
		GOOS:     runtime.GOOS,
		Getenv:   os.Getenv,
		StdinTTY: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// DisplayAvailable reports whether native dialogs can be shown.
func (e Env) DisplayAvailable() bool {
	switch e.GOOS {
	case "windows", "darwin":
		return true
	}
	if e.Getenv == nil {
		return false
	}
	return e.Getenv("DISPLAY") != "" || e.Getenv("WAYLAND_DISPLAY") != ""
}

// Capabilities lists the interactive surfaces usable in env.
func (e Env) Capabilities() []Surface {
	var out []Surface
	if e.DisplayAvailable() {
		out = append(out, SurfaceGUI)
	}
	if e.StdinTTY {
		out = append(out, SurfaceTUI)
	}
	return out
}

// Detect picks the interactive surface once at startup. preference is
// "gui", "tui" or "auto". A forced text surface works without a terminal
// so answers can be piped in.
func Detect(preference string, env Env) (Surface, error) {
	switch strings.ToLower(strings.TrimSpace(preference)) {
	case string(SurfaceGUI):
		if !env.DisplayAvailable() {
			return "", errclass.ErrUsage.WithMessage("no graphical display available: use --tui or --file and --mode")
		}
		return SurfaceGUI, nil
	case string(SurfaceTUI):
		return SurfaceTUI, nil
	}

	if env.DisplayAvailable() {
		return SurfaceGUI, nil
	}
	if env.StdinTTY {
		return SurfaceTUI, nil
	}
	return "", errclass.ErrUsage.WithMessage("no interactive surface available: use --file and --mode")
}

// New returns the provider for an interactive surface.
func New(surface Surface, in io.Reader, out io.Writer) (Provider, error) {
	switch surface {
	case SurfaceGUI:
		return NewDialog(), nil
	case SurfaceTUI:
		return NewText(in, out), nil
	}
	return nil, fmt.Errorf("no interactive provider for surface %q", surface)
}

// Flags supplies values given on the command line.
type Flags struct {
	Path    string
	Mode    string
	Compare string
}

// Algorithm parses the --mode value.
func (f Flags) Algorithm(context.Context) (model.Algorithm, error) {
	if strings.TrimSpace(f.Mode) == "" {
		return "", errclass.ErrUsage.WithMessage("--file and --mode are required unless --tui or --gui is used")
	}
	return model.ParseAlgorithm(f.Mode)
}

// File returns the --file value.
func (f Flags) File(context.Context, model.Algorithm) (string, error) {
	if strings.TrimSpace(f.Path) == "" {
		return "", errclass.ErrUsage.WithMessage("--file and --mode are required unless --tui or --gui is used")
	}
	return f.Path, nil
}

// Reference returns the --compare value.
func (f Flags) Reference(context.Context, model.Algorithm) (string, error) {
	return f.Compare, nil
}
