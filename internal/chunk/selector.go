// Package chunk picks the read chunk size for a file from the storage
// medium of the volume that holds it.
package chunk

import (
	"context"
	"fmt"

	"github.com/hashcalc-project/hashcalc/pkg/logging"
	"github.com/hashcalc-project/hashcalc/pkg/model"
	"github.com/hashcalc-project/hashcalc/pkg/pathutil"
)

// Built-in chunk sizes in bytes.
const (
	DefaultSize = 1024 * 1024
	SSDSize     = 512 * 1024
	HDDSize     = 256 * 1024
)

// Sizes holds the chunk size used for each medium class.
type Sizes struct {
	Default int
	SSD     int
	HDD     int
}

// DefaultSizes returns the built-in sizes.
func DefaultSizes() Sizes {
	return Sizes{Default: DefaultSize, SSD: SSDSize, HDD: HDDSize}
}

// WithOverrides replaces each size with the matching override when it is positive.
func (s Sizes) WithOverrides(def, ssd, hdd int) Sizes {
	if def > 0 {
		s.Default = def
	}
	if ssd > 0 {
		s.SSD = ssd
	}
	if hdd > 0 {
		s.HDD = hdd
	}
	return s
}

// TableSource supplies the medium table. *medium.Classifier implements it.
type TableSource interface {
	Table(ctx context.Context) model.MediumTable
	Supported() bool
}

// Selector maps a file to a chunk size.
type Selector struct {
	source TableSource
	sizes  Sizes
	logger *logging.Logger
}

// NewSelector creates a selector. Non-positive sizes fall back to the built-in values.
func NewSelector(source TableSource, sizes Sizes, logger *logging.Logger) *Selector {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Selector{
		source: source,
		sizes:  DefaultSizes().WithOverrides(sizes.Default, sizes.SSD, sizes.HDD),
		logger: logger,
	}
}

// Sizes returns the effective sizes.
func (s *Selector) Sizes() Sizes {
	return s.sizes
}

// Select returns the chunk size for path and logs which branch was taken.
func (s *Selector) Select(ctx context.Context, path string) int {
	name := pathutil.DisplayName(path)

	table := s.source.Table(ctx)
	if len(table) == 0 {
		if !s.source.Supported() {
			s.logger.Info(fmt.Sprintf("Disk type detection is not available on this system. Default chunk size set to %s.", formatSize(s.sizes.Default)))
		} else {
			s.logger.Info(fmt.Sprintf("Unable to retrieve SSD or HDD information. Default chunk size set to %s.", formatSize(s.sizes.Default)))
		}
		return s.sizes.Default
	}

	_, raw, ok := table.Lookup(path)
	if !ok {
		s.logger.Info(fmt.Sprintf("Unknown disk type for file %s. Default chunk size set to %s.", name, formatSize(s.sizes.Default)))
		return s.sizes.Default
	}

	size, class := s.ForClass(model.ParseMediumClass(raw))
	switch class {
	case model.SolidState, model.Rotational:
		s.logger.Info(fmt.Sprintf("%s detected for file %s. Chunk size set to %s for improved performance.", class, name, formatSize(size)))
	default:
		s.logger.Info(fmt.Sprintf("Unknown disk type for file %s. Default chunk size set to %s.", name, formatSize(size)))
	}
	return size
}

// ForClass returns the chunk size for a medium class.
func (s *Selector) ForClass(class model.MediumClass) (int, model.MediumClass) {
	switch class {
	case model.SolidState:
		return s.sizes.SSD, class
	case model.Rotational:
		return s.sizes.HDD, class
	}
	return s.sizes.Default, model.Unknown
}

func formatSize(n int) string {
	switch {
	case n%(1024*1024) == 0:
		return fmt.Sprintf("%dMB", n/(1024*1024))
	case n%1024 == 0:
		return fmt.Sprintf("%dKB", n/1024)
	}
	return fmt.Sprintf("%dB", n)
}
