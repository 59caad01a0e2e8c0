package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bridgeName string

var bridgeIPsCmd = &cobra.Command{
	Use:   "bridge-ips",
	Short: "List IPv4 addresses of the host bridge",
	Long: `List the IPv4 addresses of a bridge using "ip -4 addr show".

If the bridge does not exist or the command fails, a warning is logged and
nothing is printed; the command still succeeds.`,
	Args: cobra.NoArgs,
	RunE: runBridgeIPs,
}

func init() {
	bridgeIPsCmd.Flags().StringVarP(&bridgeName, "bridge", "b", "", "Bridge name (default from config)")
	rootCmd.AddCommand(bridgeIPsCmd)
}

func runBridgeIPs(cmd *cobra.Command, args []string) error {
	bridge := bridgeName
	if bridge == "" {
		bridge = cfg().Bridge
	}

	ips := getApp().Inspector.GetBridgeIPs(cmd.Context(), bridge)
	if len(ips) == 0 {
		logWarning("No IPv4 addresses found on bridge %s", bridge)
		return nil
	}

	for _, ip := range ips {
		fmt.Fprintln(cmd.OutOrStdout(), ip)
	}
	return nil
}
