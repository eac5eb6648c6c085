// Package engine streams a file through an incremental digest in chunks
// sized for its storage medium, reporting progress after every chunk.
package engine

import (
	"context"
	"encoding/hex"
	"errors"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/hashcalc-project/hashcalc/internal/chunk"
	"github.com/hashcalc-project/hashcalc/pkg/errclass"
	"github.com/hashcalc-project/hashcalc/pkg/logging"
	"github.com/hashcalc-project/hashcalc/pkg/model"
	"github.com/hashcalc-project/hashcalc/pkg/pathutil"
	"github.com/hashcalc-project/hashcalc/pkg/progress"
)

// ChunkSizer picks the read size for a file. *chunk.Selector implements it.
type ChunkSizer interface {
	Select(ctx context.Context, path string) int
}

// FixedChunk is a ChunkSizer that always returns the same size.
type FixedChunk int

func (f FixedChunk) Select(context.Context, string) int { return int(f) }

// Options configures an Engine.
type Options struct {
	Chunks   ChunkSizer
	Progress progress.Callback
	Logger   *logging.Logger
}

// Engine computes file digests.
type Engine struct {
	chunks   ChunkSizer
	progress progress.Callback
	logger   *logging.Logger
}

// New creates an Engine. A nil ChunkSizer uses chunk.DefaultSize.
func New(opts Options) *Engine {
	e := &Engine{
		chunks:   opts.Chunks,
		progress: opts.Progress,
		logger:   opts.Logger,
	}
	if e.chunks == nil {
		e.chunks = FixedChunk(chunk.DefaultSize)
	}
	if e.progress == nil {
		e.progress = progress.Noop
	}
	if e.logger == nil {
		e.logger = logging.Discard()
	}
	return e
}

// Compute hashes the file at path with alg. The algorithm is validated
// before the file is touched. On any error no digest is returned.
func (e *Engine) Compute(ctx context.Context, path string, alg model.Algorithm) (*model.DigestResult, error) {
	h, err := newContext(alg)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errclass.ErrIO.Wrap(err, "open file")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errclass.ErrIO.Wrap(err, "stat file")
	}
	if info.IsDir() {
		return nil, errclass.ErrIO.WithMessagef("%s is a directory", path)
	}

	chunkSize := e.chunks.Select(ctx, path)
	if chunkSize <= 0 {
		chunkSize = chunk.DefaultSize
	}

	result := &model.DigestResult{
		Algorithm:    alg,
		Target:       model.FileTarget{Path: path, Size: info.Size()},
		Name:         pathutil.DisplayName(path),
		ChunkSize:    chunkSize,
		Verification: model.VerificationSkipped,
	}
	e.logger.Debug("hashing file", map[string]any{
		"path":       path,
		"algorithm":  string(alg),
		"size":       info.Size(),
		"chunk_size": chunkSize,
	})

	digest, n, err := e.stream(ctx, f, h, string(alg), chunkSize, info.Size())
	if err != nil {
		return nil, err
	}
	result.Digest = digest
	result.BytesRead = n
	return result, nil
}

// ComputeReader hashes r with a fixed chunk size. total is only used to
// scale progress and may be zero when unknown. name labels the result.
func (e *Engine) ComputeReader(ctx context.Context, r io.Reader, name string, alg model.Algorithm, chunkSize int, total int64) (*model.DigestResult, error) {
	h, err := newContext(alg)
	if err != nil {
		return nil, err
	}
	if chunkSize <= 0 {
		chunkSize = chunk.DefaultSize
	}

	digest, n, err := e.stream(ctx, r, h, string(alg), chunkSize, total)
	if err != nil {
		return nil, err
	}
	return &model.DigestResult{
		Algorithm:    alg,
		Target:       model.FileTarget{Path: name, Size: total},
		Name:         pathutil.DisplayName(name),
		BytesRead:    n,
		ChunkSize:    chunkSize,
		Digest:       digest,
		Verification: model.VerificationSkipped,
	}, nil
}

// Verify computes the digest of path and, when reference is not blank,
// compares it with reference.
func (e *Engine) Verify(ctx context.Context, path string, alg model.Algorithm, reference string) (*model.DigestResult, error) {
	result, err := e.Compute(ctx, path, alg)
	if err != nil {
		return nil, err
	}
	ApplyReference(result, reference)
	return result, nil
}

// stream feeds r to h in chunkSize reads until EOF. Progress counts the bytes
// actually read, so it may end above or below total if the source changed.
func (e *Engine) stream(ctx context.Context, r io.Reader, h hash.Hash, op string, chunkSize int, total int64) (string, int64, error) {
	buf := make([]byte, chunkSize)
	p := progress.New(op, total, e.progress)

	for {
		if err := ctx.Err(); err != nil {
			return "", p.Current(), errclass.ErrCancelled.Wrap(err, "hashing interrupted")
		}

		n, err := io.ReadFull(r, buf)
		if n > 0 {
			h.Write(buf[:n])
			p.Add(int64(n), "")
		}
		if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return "", p.Current(), errclass.ErrIO.Wrap(err, "read file")
		}
	}

	return strings.ToUpper(hex.EncodeToString(h.Sum(nil))), p.Current(), nil
}
