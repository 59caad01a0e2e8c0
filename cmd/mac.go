package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vbmc-host/internal/errors"
	"github.com/firefly-engineering/vbmc-host/internal/network"
)

var macCount int

var macCmd = &cobra.Command{
	Use:   "mac",
	Short: "Generate random MAC addresses (00:16:3e prefix)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if macCount < 1 {
			return errors.ValidationError("--count must be at least 1")
		}
		for i := 0; i < macCount; i++ {
			fmt.Fprintln(cmd.OutOrStdout(), network.RandomMAC())
		}
		return nil
	},
}

func init() {
	macCmd.Flags().IntVarP(&macCount, "count", "n", 1, "Number of addresses to generate")
	rootCmd.AddCommand(macCmd)
}
