// Package medium classifies the storage medium (solid-state or rotational)
// behind each mounted volume. Classification is advisory: every failure
// degrades to an empty table and is only logged.
package medium

import (
	"context"
	"sync"
	"time"

	"github.com/hashcalc-project/hashcalc/pkg/errclass"
	"github.com/hashcalc-project/hashcalc/pkg/logging"
	"github.com/hashcalc-project/hashcalc/pkg/model"
)

// Strategy is a platform mechanism that enumerates volumes and their media type.
type Strategy interface {
	// Name returns the strategy identifier used in config and diagnostics.
	Name() string

	// Detect returns the media type of every volume it can identify.
	Detect(ctx context.Context) (model.MediumTable, error)
}

// Classifier owns one lazily computed MediumTable. The table is built on
// first use and reused for the life of the Classifier, even if disks change.
type Classifier struct {
	strategy Strategy
	timeout  time.Duration
	logger   *logging.Logger

	once  sync.Once
	table model.MediumTable
}

// NewClassifier creates a classifier. A nil strategy means Empty and a
// non-positive timeout means no deadline beyond the caller's context.
func NewClassifier(strategy Strategy, timeout time.Duration, logger *logging.Logger) *Classifier {
	if strategy == nil {
		strategy = Empty{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Classifier{strategy: strategy, timeout: timeout, logger: logger}
}

// StrategyName returns the name of the underlying strategy.
func (c *Classifier) StrategyName() string {
	return c.strategy.Name()
}

// Supported reports whether the platform has a detection mechanism at all.
func (c *Classifier) Supported() bool {
	return c.strategy.Name() != NameNone
}

// Table returns the cached medium table, detecting it on the first call.
// The result is never nil.
func (c *Classifier) Table(ctx context.Context) model.MediumTable {
	c.once.Do(func() {
		c.table = c.detect(ctx)
	})
	return c.table
}

func (c *Classifier) detect(ctx context.Context) model.MediumTable {
	if !c.Supported() {
		return model.MediumTable{}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.logger.Info("Detecting SSD and HDD...", map[string]any{"strategy": c.strategy.Name()})
	table, err := c.strategy.Detect(ctx)
	if err != nil {
		advisory := errclass.ErrMediumUnavailable.Wrap(err, c.strategy.Name())
		c.logger.Debug("medium detection failed", map[string]any{"error": advisory.Error()})
		return model.MediumTable{}
	}
	if table == nil {
		return model.MediumTable{}
	}
	c.logger.Debug("medium detection finished", map[string]any{"volumes": len(table)})
	return table
}
