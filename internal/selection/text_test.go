package selection_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashcalc-project/hashcalc/internal/selection"
	"github.com/hashcalc-project/hashcalc/pkg/errclass"
	"github.com/hashcalc-project/hashcalc/pkg/model"
)

func TestText_AlgorithmByNumber(t *testing.T) {
	var out bytes.Buffer
	p := selection.NewText(strings.NewReader("3\n"), &out)

	alg, err := p.Algorithm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.SHA256, alg)
	assert.Contains(t, out.String(), "1. MD5")
	assert.Contains(t, out.String(), "4. SHA512")
}

func TestText_AlgorithmRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	p := selection.NewText(strings.NewReader("0\nfive\n9\n2\n"), &out)

	alg, err := p.Algorithm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.SHA1, alg)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid input. Please select a number between 1 and 4."))
}

func TestText_AlgorithmRejectsNames(t *testing.T) {
	var out bytes.Buffer
	p := selection.NewText(strings.NewReader("sha512\nSHA1\n4\n"), &out)

	alg, err := p.Algorithm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.SHA512, alg)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid input. Please select a number between 1 and 4."))
}

func TestText_AlgorithmEOFIsCancellation(t *testing.T) {
	p := selection.NewText(strings.NewReader(""), io.Discard)

	_, err := p.Algorithm(context.Background())
	assert.ErrorIs(t, err, errclass.ErrCancelled)
}

func TestText_FileRepromptsUntilRegularFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "image.iso")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0o644))

	input := strings.Join([]string{
		filepath.Join(dir, "missing.iso"),
		dir,
		`"` + file + `"`,
	}, "\n") + "\n"

	var out bytes.Buffer
	p := selection.NewText(strings.NewReader(input), &out)

	got, err := p.File(context.Background(), model.MD5)
	require.NoError(t, err)
	assert.Equal(t, file, got)
	assert.Equal(t, 2, strings.Count(out.String(), "Please select a file path."))
	assert.Contains(t, out.String(), "Please input the file path to calculate MD5: ")
}

func TestText_FileBlankMeansNoSelection(t *testing.T) {
	p := selection.NewText(strings.NewReader("\n"), io.Discard)

	got, err := p.File(context.Background(), model.MD5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestText_Reference(t *testing.T) {
	p := selection.NewText(strings.NewReader("  abcdef  \n\n"), io.Discard)

	ref, err := p.Reference(context.Background(), model.SHA1)
	require.NoError(t, err)
	assert.Equal(t, "abcdef", ref)

	ref, err = p.Reference(context.Background(), model.SHA1)
	require.NoError(t, err)
	assert.Empty(t, ref)
}

func TestText_LastLineWithoutNewline(t *testing.T) {
	p := selection.NewText(strings.NewReader("deadbeef"), io.Discard)

	ref, err := p.Reference(context.Background(), model.MD5)
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", ref)
}

func TestText_InterruptedPrompt(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := selection.NewText(r, io.Discard)
	_, err := p.Algorithm(ctx)
	assert.ErrorIs(t, err, errclass.ErrCancelled)
}
