package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gatewayCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Print the host's default IPv4 gateway",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, err := getApp().Inspector.DefaultGateway()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), gw)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gatewayCmd)
}
