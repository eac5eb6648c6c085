package selection

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashcalc-project/hashcalc/pkg/errclass"
	"github.com/hashcalc-project/hashcalc/pkg/model"
	"github.com/hashcalc-project/hashcalc/pkg/pathutil"
)

// Text prompts on a line-oriented terminal.
type Text struct {
	in  *bufio.Reader
	out io.Writer
}

// NewText creates a text provider reading answers from in.
func NewText(in io.Reader, out io.Writer) *Text {
	return &Text{in: bufio.NewReader(in), out: out}
}

// Algorithm shows a numbered menu until a valid choice is entered.
func (t *Text) Algorithm(ctx context.Context) (model.Algorithm, error) {
	algs := model.Algorithms()
	for {
		var menu strings.Builder
		menu.WriteString("Select the algorithm to calculate:\n")
		for i, a := range algs {
			fmt.Fprintf(&menu, "%d. %s\n", i+1, a)
		}
		fmt.Fprintf(&menu, "Please input the number of the selected algorithm (1-%d): ", len(algs))
		if _, err := fmt.Fprint(t.out, menu.String()); err != nil {
			return "", fmt.Errorf("write algorithm prompt: %w", err)
		}

		line, err := t.readLine(ctx)
		if err != nil {
			return "", err
		}
		if alg, ok := pickAlgorithm(line, algs); ok {
			return alg, nil
		}
		fmt.Fprintf(t.out, "Invalid input. Please select a number between 1 and %d.\n", len(algs))
	}
}

func pickAlgorithm(line string, algs []model.Algorithm) (model.Algorithm, bool) {
	line = strings.TrimSpace(line)
	for i, a := range algs {
		if line == fmt.Sprint(i+1) {
			return a, true
		}
	}
	return "", false
}

// File asks for a path until it names an existing regular file. A blank
// answer means no file was selected.
func (t *Text) File(ctx context.Context, alg model.Algorithm) (string, error) {
	for {
		fmt.Fprintf(t.out, "Please input the file path to calculate %s: ", alg)
		line, err := t.readLine(ctx)
		if err != nil {
			return "", err
		}
		path := expandHome(strings.Trim(strings.TrimSpace(line), `"'`))
		if path == "" {
			return "", nil
		}
		if err := pathutil.ValidateFile(path); err != nil {
			fmt.Fprintln(t.out, "Please select a file path.")
			continue
		}
		return path, nil
	}
}

// Reference asks for the digest to compare against. Blank skips comparison.
func (t *Text) Reference(ctx context.Context, alg model.Algorithm) (string, error) {
	fmt.Fprintf(t.out, "Please input the %s value to compare against, or leave blank to skip: ", alg)
	line, err := t.readLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLine returns one line without its terminator. Input ending without a
// final newline still yields that line; EOF before any input or an
// interrupt is a cancellation.
func (t *Text) readLine(ctx context.Context) (string, error) {
	type answer struct {
		line string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		line, err := t.in.ReadString('\n')
		ch <- answer{line, err}
	}()

	select {
	case <-ctx.Done():
		return "", errclass.ErrCancelled.Wrap(ctx.Err(), "input interrupted")
	case a := <-ch:
		if a.err != nil {
			if errors.Is(a.err, io.EOF) && a.line != "" {
				return strings.TrimRight(a.line, "\r\n"), nil
			}
			if errors.Is(a.err, io.EOF) {
				return "", errclass.ErrCancelled.WithMessage("input closed")
			}
			return "", fmt.Errorf("read input: %w", a.err)
		}
		return strings.TrimRight(a.line, "\r\n"), nil
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + strings.TrimPrefix(path, "~")
}
