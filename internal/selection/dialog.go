package selection

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/hashcalc-project/hashcalc/pkg/errclass"
	"github.com/hashcalc-project/hashcalc/pkg/model"
)

// dialogs is the subset of native dialogs the Dialog provider needs.
type dialogs interface {
	List(ctx context.Context, title, text string, items []string) (string, error)
	SelectFile(ctx context.Context, title, dir string) (string, error)
	Entry(ctx context.Context, title, text string) (string, error)
}

// Dialog asks through native desktop dialogs.
type Dialog struct {
	ui dialogs
}

// NewDialog creates a Dialog backed by zenity.
func NewDialog() *Dialog {
	return &Dialog{ui: zenityDialogs{}}
}

// Algorithm shows the four algorithms as a single-choice list.
func (d *Dialog) Algorithm(ctx context.Context) (model.Algorithm, error) {
	algs := model.Algorithms()
	items := make([]string, len(algs))
	for i, a := range algs {
		items[i] = string(a)
	}

	choice, err := d.ui.List(ctx, "Select Hash Algorithm", "Please select a hash algorithm:", items)
	if err != nil {
		return "", dialogError(err, "algorithm dialog")
	}
	return model.ParseAlgorithm(choice)
}

// File opens a file picker in the working directory.
func (d *Dialog) File(ctx context.Context, alg model.Algorithm) (string, error) {
	dir, _ := os.Getwd()
	path, err := d.ui.SelectFile(ctx, fmt.Sprintf("Select the file to calculate %s", alg), dir)
	if err != nil {
		return "", dialogError(err, "file dialog")
	}
	return path, nil
}

// Reference asks for the digest to compare against. Cancelling skips comparison.
func (d *Dialog) Reference(ctx context.Context, alg model.Algorithm) (string, error) {
	value, err := d.ui.Entry(ctx,
		fmt.Sprintf("Input %s Value", alg),
		fmt.Sprintf("Please input the %s value to compare against, or leave blank to skip:", alg))
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	if err != nil {
		return "", dialogError(err, "reference dialog")
	}
	return strings.TrimSpace(value), nil
}

func dialogError(err error, what string) error {
	if errors.Is(err, zenity.ErrCanceled) || errors.Is(err, context.Canceled) {
		return errclass.ErrCancelled.Wrap(err, what)
	}
	return fmt.Errorf("%s: %w", what, err)
}

type zenityDialogs struct{}

func (zenityDialogs) List(ctx context.Context, title, text string, items []string) (string, error) {
	return zenity.List(text, items,
		zenity.Title(title),
		zenity.DisallowEmpty(),
		zenity.Context(ctx))
}

func (zenityDialogs) SelectFile(ctx context.Context, title, dir string) (string, error) {
	opts := []zenity.Option{zenity.Title(title), zenity.Context(ctx)}
	if dir != "" {
		opts = append(opts, zenity.Filename(dir+string(filepath.Separator)))
	}
	return zenity.SelectFile(opts...)
}

func (zenityDialogs) Entry(ctx context.Context, title, text string) (string, error) {
	return zenity.Entry(text, zenity.Title(title), zenity.Context(ctx))
}
