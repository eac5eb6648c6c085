package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hashcalc-project/hashcalc/internal/engine"
	"github.com/hashcalc-project/hashcalc/internal/selection"
	"github.com/hashcalc-project/hashcalc/pkg/color"
	"github.com/hashcalc-project/hashcalc/pkg/errclass"
	"github.com/hashcalc-project/hashcalc/pkg/model"
	"github.com/hashcalc-project/hashcalc/pkg/pathutil"
	"github.com/hashcalc-project/hashcalc/pkg/progress"
)

// stdinName is the --file value that selects standard input.
const stdinName = "-"

var (
	hashFile       string
	hashMode       string
	hashCompare    string
	hashTUI        bool
	hashGUI        bool
	hashNoProgress bool
	hashStrict     bool
)

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&hashFile, "file", "f", "", `file to hash ("-" reads standard input)`)
	f.StringVarP(&hashMode, "mode", "m", "", "algorithm: MD5, SHA1, SHA256 or SHA512")
	f.StringVarP(&hashCompare, "compare", "c", "", "reference digest to verify against")
	f.BoolVarP(&hashTUI, "tui", "t", false, "select interactively with text prompts")
	f.BoolVar(&hashGUI, "gui", false, "select interactively with graphical dialogs")
	f.BoolVar(&hashNoProgress, "no-progress", false, "disable the progress bar")
	f.BoolVar(&hashStrict, "strict", false, "exit with status 3 when verification fails")

	_ = rootCmd.RegisterFlagCompletionFunc("mode", completeAlgorithms)
}

func completeAlgorithms(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, a := range model.Algorithms() {
		names = append(names, string(a))
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func runHash(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if hashTUI && hashGUI {
		return errclass.ErrUsage.WithMessage("--tui and --gui are mutually exclusive")
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	interactive := hashTUI || hashGUI || !anyChanged(cmd.Flags(), "file", "mode", "compare")
	provider, mode, err := s.provider(cmd, interactive)
	if err != nil {
		return err
	}

	alg, err := provider.Algorithm(ctx)
	if err != nil {
		if errors.Is(err, errclass.ErrUsage) && mode != "" {
			return errclass.ErrUsage.WithMessagef("unsupported algorithm %q. %s", mode, suggestAlgorithms(mode))
		}
		return err
	}
	path, err := provider.File(ctx, alg)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "No file selected.")
		return nil
	}
	reference, err := provider.Reference(ctx, alg)
	if err != nil {
		return err
	}

	result, err := s.hash(ctx, cmd, path, alg, reference)
	if err != nil {
		return err
	}

	if err := printResult(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if interactive && s.env.StdinTTY && !jsonOutput {
		pressEnter(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	}
	if hashStrict && result.Verification == model.VerificationMismatch {
		return errclass.ErrDigestMismatch.WithMessagef("%s digest of %s does not match the reference", alg, result.Name)
	}
	return nil
}

// provider picks the selection provider. mode is the algorithm token given
// on the command line or taken from config, "" when interactive.
func (s *session) provider(cmd *cobra.Command, interactive bool) (selection.Provider, string, error) {
	if !interactive {
		mode := hashMode
		if mode == "" {
			mode = s.cfg.DefaultAlgorithm
		}
		return selection.Flags{Path: hashFile, Mode: mode, Compare: hashCompare}, mode, nil
	}

	pref := s.cfg.Interface
	switch {
	case hashTUI:
		pref = string(selection.SurfaceTUI)
	case hashGUI:
		pref = string(selection.SurfaceGUI)
	}
	surface, err := selection.Detect(pref, s.env)
	if err != nil {
		return nil, "", err
	}
	s.logger.Debug("interactive selection", map[string]any{"surface": string(surface)})

	p, err := selection.New(surface, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return nil, "", err
	}
	return p, "", nil
}

// hash runs the engine on path, or on standard input for "-".
func (s *session) hash(ctx context.Context, cmd *cobra.Command, path string, alg model.Algorithm, reference string) (*model.DigestResult, error) {
	showProgress := s.cfg.Progress() && !hashNoProgress

	if path == stdinName {
		bar := progress.NewCountingTerminal(cmd.ErrOrStderr(), fmt.Sprintf("Calculating %s for stdin", alg), showProgress)
		eng := engine.New(engine.Options{Chunks: s.selector, Progress: bar.Callback(), Logger: s.logger})
		result, err := eng.ComputeReader(ctx, cmd.InOrStdin(), "stdin", alg, s.selector.Sizes().Default, 0)
		bar.Done("")
		if err != nil {
			return nil, err
		}
		engine.ApplyReference(result, reference)
		return result, nil
	}

	resolved, err := pathutil.Resolve(path)
	if err != nil {
		return nil, err
	}
	bar := progress.NewTerminalWriter(cmd.ErrOrStderr(),
		fmt.Sprintf("Calculating %s for %s", alg, pathutil.DisplayName(resolved)), 0, showProgress)
	eng := engine.New(engine.Options{Chunks: s.selector, Progress: bar.Callback(), Logger: s.logger})
	result, err := eng.Verify(ctx, resolved, alg, reference)
	bar.Done("")
	return result, err
}

func printResult(w io.Writer, result *model.DigestResult) error {
	if jsonOutput {
		return outputJSON(w, result)
	}

	fmt.Fprintf(w, "%s value for %s: %s\n", result.Algorithm, result.Name, color.Digest(result.Digest))
	switch result.Verification {
	case model.VerificationMatch:
		fmt.Fprintln(w, color.Success(fmt.Sprintf("%s's %s value verification successful", result.Name, result.Algorithm)))
	case model.VerificationMismatch:
		fmt.Fprintln(w, color.Error(fmt.Sprintf("%s's %s value verification failed", result.Name, result.Algorithm)))
	}
	return nil
}

func anyChanged(flags *pflag.FlagSet, names ...string) bool {
	for _, n := range names {
		if flags.Changed(n) {
			return true
		}
	}
	return false
}
