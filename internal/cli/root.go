package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hashcalc-project/hashcalc/pkg/errclass"
)

var (
	jsonOutput bool
	noColor    bool
	configFile string
	logLevel   string
	rootCmd    = &cobra.Command{
		Use:   "hashcalc",
		Short: "hashcalc - streaming file digests",
		Long: `hashcalc computes the MD5, SHA1, SHA256 or SHA512 digest of a file and
optionally verifies it against a reference value.

Files are streamed in chunks sized for the storage medium they live on
(512KB on solid-state drives, 256KB on rotational drives, 1MB otherwise).
Run without flags to pick the algorithm and file interactively.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runHash,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&jsonOutput, "json", false, "output in JSON format")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")
	pf.StringVar(&configFile, "config", "", "config file (default $HASHCALC_CONFIG or the user config dir)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errclass.ErrUsage.Wrap(err, "invalid flags")
	})
}

// Execute runs the root command and exits with the status mapped from its error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	os.Exit(reportError(os.Stdout, err))
}

// reportError prints err for the user and returns the process exit code.
func reportError(out io.Writer, err error) int {
	switch {
	case err == nil:
		return errclass.ExitOK
	case errors.Is(err, errclass.ErrCancelled):
		fmt.Fprintln(out, "\nProgram exited.")
	case errors.Is(err, errclass.ErrDigestMismatch):
		// the verification line has already been printed
	default:
		fmtErr("%v", err)
	}
	return errclass.ExitCode(err)
}

// usageArgs classifies positional-argument errors as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return errclass.ErrUsage.Wrap(err, "invalid arguments")
		}
		return nil
	}
}

// outputJSON writes v to w as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
