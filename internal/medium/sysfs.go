package medium

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/hashcalc-project/hashcalc/pkg/errclass"
	"github.com/hashcalc-project/hashcalc/pkg/model"
)

// Sysfs detects media types on Linux by matching mounted partitions to the
// rotational flag the kernel exposes for their block device.
type Sysfs struct {
	// Root is the sysfs mount point.
	Root string
	// Partitions lists mounted partitions.
	Partitions func(ctx context.Context) ([]disk.PartitionStat, error)
}

// NewSysfs creates a Sysfs strategy reading /sys and gopsutil partitions.
func NewSysfs() *Sysfs {
	return &Sysfs{
		Root: "/sys",
		Partitions: func(ctx context.Context) ([]disk.PartitionStat, error) {
			return disk.PartitionsWithContext(ctx, false)
		},
	}
}

func (s *Sysfs) Name() string { return NameSysfs }

// Detect returns one entry per mount point backed by a classifiable block device.
func (s *Sysfs) Detect(ctx context.Context) (model.MediumTable, error) {
	parts, err := s.Partitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list partitions: %w", err)
	}

	table := model.MediumTable{}
	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if p.Mountpoint == "" || !strings.HasPrefix(p.Device, "/dev/") {
			continue
		}
		mediaType, ok := s.mediaType(p.Device)
		if !ok {
			continue
		}
		table[p.Mountpoint] = mediaType
	}

	if len(table) == 0 {
		return nil, errclass.ErrMediumUnavailable.WithMessage("no classifiable block devices")
	}
	return table, nil
}

// mediaType reads queue/rotational for device, falling back to the parent
// disk when device is a partition.
func (s *Sysfs) mediaType(device string) (string, bool) {
	if resolved, err := filepath.EvalSymlinks(device); err == nil {
		device = resolved
	}
	node, err := filepath.EvalSymlinks(filepath.Join(s.Root, "class", "block", filepath.Base(device)))
	if err != nil {
		return "", false
	}

	for _, dir := range []string{node, filepath.Dir(node)} {
		data, err := os.ReadFile(filepath.Join(dir, "queue", "rotational"))
		if err != nil {
			continue
		}
		switch strings.TrimSpace(string(data)) {
		case "0":
			return string(model.SolidState), true
		case "1":
			return string(model.Rotational), true
		}
		return "", false
	}
	return "", false
}
