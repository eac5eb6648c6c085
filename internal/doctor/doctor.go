// Package doctor reports how hashcalc sees the current environment: which
// medium detection strategy applies, what it found, and which interactive
// surfaces are usable.
package doctor

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/hashcalc-project/hashcalc/internal/chunk"
	"github.com/hashcalc-project/hashcalc/internal/selection"
	"github.com/hashcalc-project/hashcalc/pkg/model"
)

// Severity levels for findings.
const (
	SeverityInfo = "info"
	SeverityWarn = "warn"
)

// Finding represents a detected issue.
type Finding struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Path        string `json:"path,omitempty"`
}

// Volume is one entry of the medium table.
type Volume struct {
	Volume    string            `json:"volume"`
	MediaType string            `json:"media_type"`
	Class     model.MediumClass `json:"class"`
	ChunkSize int               `json:"chunk_size"`
}

// Report contains doctor check results.
type Report struct {
	Healthy          bool                `json:"healthy"`
	Platform         string              `json:"platform"`
	Strategy         string              `json:"strategy"`
	DefaultChunkSize int                 `json:"default_chunk_size"`
	Volumes          []Volume            `json:"volumes"`
	Surfaces         []selection.Surface `json:"surfaces"`
	ConfigPath       string              `json:"config_path,omitempty"`
	Findings         []Finding           `json:"findings"`
}

// MediumSource is the medium table provider inspected by the doctor.
// *medium.Classifier implements it.
type MediumSource interface {
	chunk.TableSource
	StrategyName() string
}

// Doctor performs environment checks.
type Doctor struct {
	source     MediumSource
	selector   *chunk.Selector
	env        selection.Env
	configPath string
}

// NewDoctor creates a new doctor.
func NewDoctor(source MediumSource, selector *chunk.Selector, env selection.Env, configPath string) *Doctor {
	return &Doctor{source: source, selector: selector, env: env, configPath: configPath}
}

// Check runs all diagnostic checks. It never fails: problems become findings.
func (d *Doctor) Check(ctx context.Context) *Report {
	report := &Report{
		Healthy:          true,
		Platform:         runtime.GOOS + "/" + runtime.GOARCH,
		Strategy:         d.source.StrategyName(),
		DefaultChunkSize: d.selector.Sizes().Default,
		Volumes:          []Volume{},
		Surfaces:         d.env.Capabilities(),
		ConfigPath:       d.configPath,
		Findings:         []Finding{},
	}

	d.checkMedium(ctx, report)
	d.checkSurfaces(report)
	d.checkConfig(report)

	for _, f := range report.Findings {
		if f.Severity == SeverityWarn {
			report.Healthy = false
		}
	}
	return report
}

func (d *Doctor) checkMedium(ctx context.Context, report *Report) {
	if !d.source.Supported() {
		report.add(Finding{
			Category:    "medium",
			Description: "medium detection is disabled on this system; default chunk size will be used",
			Severity:    SeverityInfo,
		})
		return
	}

	table := d.source.Table(ctx)
	if len(table) == 0 {
		report.add(Finding{
			Category:    "medium",
			Description: fmt.Sprintf("medium detection (%s) returned no volumes; default chunk size will be used", d.source.StrategyName()),
			Severity:    SeverityWarn,
		})
		return
	}

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		size, class := d.selector.ForClass(model.ParseMediumClass(table[k]))
		report.Volumes = append(report.Volumes, Volume{
			Volume:    k,
			MediaType: table[k],
			Class:     class,
			ChunkSize: size,
		})
		if class == model.Unknown {
			report.add(Finding{
				Category:    "medium",
				Description: fmt.Sprintf("volume %s reports media type %q; default chunk size applies", k, table[k]),
				Severity:    SeverityInfo,
				Path:        k,
			})
		}
	}
}

func (d *Doctor) checkSurfaces(report *Report) {
	if len(report.Surfaces) == 0 {
		report.add(Finding{
			Category:    "interface",
			Description: "no interactive surface available; use --file and --mode",
			Severity:    SeverityInfo,
		})
	}
}

func (d *Doctor) checkConfig(report *Report) {
	if d.configPath == "" {
		return
	}
	if _, err := os.Stat(d.configPath); os.IsNotExist(err) {
		report.add(Finding{
			Category:    "config",
			Description: "config file not found; built-in defaults in effect",
			Severity:    SeverityInfo,
			Path:        d.configPath,
		})
	} else if err != nil {
		report.add(Finding{
			Category:    "config",
			Description: fmt.Sprintf("cannot stat config file: %v", err),
			Severity:    SeverityWarn,
			Path:        d.configPath,
		})
	}
}

func (r *Report) add(f Finding) {
	r.Findings = append(r.Findings, f)
}
