package medium

import (
	"context"
	"strings"

	"github.com/hashcalc-project/hashcalc/pkg/model"
)

// Strategy names accepted by ForName.
const (
	NameAuto       = "auto"
	NameNone       = "none"
	NamePowerShell = "powershell"
	NameSysfs      = "sysfs"
)

// Empty is the portable default. It never has any information.
type Empty struct{}

func (Empty) Name() string { return NameNone }

func (Empty) Detect(context.Context) (model.MediumTable, error) {
	return model.MediumTable{}, nil
}

// Func adapts a function into a Strategy.
type Func struct {
	ID string
	Fn func(ctx context.Context) (model.MediumTable, error)
}

func (f Func) Name() string { return f.ID }

func (f Func) Detect(ctx context.Context) (model.MediumTable, error) {
	return f.Fn(ctx)
}

// Auto returns the strategy for the running platform.
func Auto() Strategy {
	return platformDefault()
}

// ForName selects a strategy by config or environment token.
// Unknown tokens fall back to Auto.
func ForName(name string) Strategy {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameNone, "off", "false":
		return Empty{}
	case NamePowerShell:
		return NewPowerShell()
	case NameSysfs:
		return NewSysfs()
	}
	return Auto()
}
