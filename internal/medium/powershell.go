package medium

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hashcalc-project/hashcalc/pkg/errclass"
	"github.com/hashcalc-project/hashcalc/pkg/model"
)

// powerShellScript prints "<DriveLetter> <MediaType>" for every partition
// that has a drive letter, matched to its physical disk by UniqueId.
const powerShellScript = `Get-PhysicalDisk | % { $pd = $_; Get-Partition | ? DriveLetter | ? { (Get-Disk -Number $_.DiskNumber).UniqueId -eq $pd.UniqueId } | % { "$($_.DriveLetter) $($pd.MediaType)" } }`

// PowerShell detects media types through the Windows Storage cmdlets.
type PowerShell struct {
	// Command is the PowerShell executable.
	Command string
}

// NewPowerShell creates a PowerShell strategy using the default executable.
func NewPowerShell() *PowerShell {
	return &PowerShell{Command: "powershell"}
}

func (p *PowerShell) Name() string { return NamePowerShell }

// Detect runs the enumeration script and parses its output.
func (p *PowerShell) Detect(ctx context.Context) (model.MediumTable, error) {
	cmd := exec.CommandContext(ctx, p.Command, "-NoProfile", "-NonInteractive", "-Command", powerShellScript)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", p.Command, err)
	}
	return ParsePowerShell(string(out))
}

// ParsePowerShell parses "<letter> <media type>" lines split on the first
// whitespace run. Lines without both fields are skipped; letters are upper-cased and a trailing colon dropped.
func ParsePowerShell(out string) (model.MediumTable, error) {
	if strings.TrimSpace(out) == "" {
		return nil, errclass.ErrMediumUnavailable.WithMessage("empty output")
	}

	table := model.MediumTable{}
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		volume := strings.ToUpper(strings.TrimSuffix(fields[0], ":"))
		if volume == "" {
			continue
		}
		mediaType := strings.Join(fields[1:], " ")
		table[volume] = mediaType
	}

	if len(table) == 0 {
		return nil, errclass.ErrMediumUnavailable.WithMessage("no drive letters in output")
	}
	return table, nil
}
