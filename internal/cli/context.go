package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hashcalc-project/hashcalc/internal/chunk"
	"github.com/hashcalc-project/hashcalc/internal/medium"
	"github.com/hashcalc-project/hashcalc/internal/selection"
	"github.com/hashcalc-project/hashcalc/pkg/color"
	"github.com/hashcalc-project/hashcalc/pkg/config"
	"github.com/hashcalc-project/hashcalc/pkg/errclass"
	"github.com/hashcalc-project/hashcalc/pkg/logging"
)

// currentEnv is replaced in tests.
var currentEnv = selection.CurrentEnv

// session holds what every command derives from config and global flags.
type session struct {
	cfg        *config.Config
	cfgPath    string
	logger     *logging.Logger
	classifier *medium.Classifier
	selector   *chunk.Selector
	env        selection.Env
}

// newSession loads config, configures color and logging, and wires the
// medium classifier into a chunk selector.
func newSession(cmd *cobra.Command) (*session, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, errclass.ErrUsage.Wrap(err, "load config")
	}

	color.Init(noColor)
	if noColor {
		color.Disable()
	}

	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	// stdout carries the JSON document, so logs move to stderr.
	logOut := cmd.OutOrStdout()
	if jsonOutput {
		logOut = cmd.ErrOrStderr()
	}
	logger := logging.NewTextLogger(logOut, logging.ParseLevel(level))
	logger.SetFormat(logging.ParseFormat(cfg.Logging.Format))
	logging.SetGlobal(logger)

	classifier := medium.NewClassifier(medium.ForName(cfg.Medium.Strategy), cfg.MediumTimeout(), logger)
	sizes := chunk.Sizes{Default: cfg.Chunk.Default, SSD: cfg.Chunk.SSD, HDD: cfg.Chunk.HDD}

	return &session{
		cfg:        cfg,
		cfgPath:    path,
		logger:     logger,
		classifier: classifier,
		selector:   chunk.NewSelector(classifier, sizes, logger),
		env:        currentEnv(),
	}, nil
}

func resolveConfigPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.DefaultPath()
}

// pressEnter waits for a line on in. Interrupts return immediately.
func pressEnter(ctx context.Context, in io.Reader, out io.Writer) {
	fmt.Fprint(out, "Press Enter to continue...")
	done := make(chan struct{})
	go func() {
		bufio.NewReader(in).ReadString('\n')
		close(done)
	}()
	select {
	case <-ctx.Done():
	case <-done:
	}
	fmt.Fprintln(out)
}

func fmtErr(format string, args ...any) {
	prefix := "hashcalc: "
	if color.Enabled() {
		prefix = color.Error("hashcalc:") + " "
	}
	fmt.Fprintf(os.Stderr, prefix+format+"\n", args...)
}
