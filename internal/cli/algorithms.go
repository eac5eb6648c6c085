package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashcalc-project/hashcalc/pkg/model"
)

type algorithmInfo struct {
	Name      string `json:"name"`
	HexLength int    `json:"hex_length"`
	Bits      int    `json:"bits"`
}

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List supported digest algorithms",
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		var list []algorithmInfo
		for _, a := range model.Algorithms() {
			list = append(list, algorithmInfo{Name: string(a), HexLength: a.HexLen(), Bits: a.HexLen() * 4})
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), list)
		}
		for _, info := range list {
			fmt.Fprintf(cmd.OutOrStdout(), "%-7s %3d hex characters (%d bits)\n", info.Name, info.HexLength, info.Bits)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
}
