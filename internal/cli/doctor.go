package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hashcalc-project/hashcalc/internal/doctor"
	"github.com/hashcalc-project/hashcalc/pkg/color"
	"github.com/hashcalc-project/hashcalc/pkg/progress"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the hashing environment",
	Long: `Check the hashing environment.

Runs storage-medium detection and reports each volume with the chunk size
files on it would be read with, the interactive surfaces available, and the
config file in use.`,
	Args: usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		doc := doctor.NewDoctor(s.classifier, s.selector, s.env, s.cfgPath)
		report := doc.Check(cmd.Context())

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), report)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Platform: %s\n", report.Platform)
		fmt.Fprintf(out, "Medium strategy: %s\n", report.Strategy)
		fmt.Fprintf(out, "Default chunk size: %s\n", progress.HumanBytes(int64(report.DefaultChunkSize)))
		if len(report.Volumes) > 0 {
			fmt.Fprintln(out, color.Header("Volumes:"))
			for _, v := range report.Volumes {
				fmt.Fprintf(out, "  %-12s %-12s %-8s %s chunks\n", v.Volume, v.MediaType, v.Class, progress.HumanBytes(int64(v.ChunkSize)))
			}
		}

		surfaces := make([]string, len(report.Surfaces))
		for i, sf := range report.Surfaces {
			surfaces[i] = string(sf)
		}
		if len(surfaces) == 0 {
			surfaces = []string{"none"}
		}
		fmt.Fprintf(out, "Interactive surfaces: %s\n", strings.Join(surfaces, ", "))
		fmt.Fprintf(out, "Config: %s\n", report.ConfigPath)

		if len(report.Findings) == 0 {
			fmt.Fprintln(out, color.Success("Environment is healthy."))
			return nil
		}
		fmt.Fprintf(out, "Findings (%d):\n", len(report.Findings))
		for _, f := range report.Findings {
			sev := color.Dim(f.Severity)
			if f.Severity == doctor.SeverityWarn {
				sev = color.Warning(f.Severity)
			}
			fmt.Fprintf(out, "  [%s] %s: %s\n", sev, f.Category, f.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
