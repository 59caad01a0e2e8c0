package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vbmc-host/internal/logging"
)

var ifaceIPOnly bool

var ifaceCmd = &cobra.Command{
	Use:   "iface <name>",
	Short: "Show IPv4 and MAC address of an interface",
	Args:  cobra.ExactArgs(1),
	RunE:  runIface,
}

func init() {
	ifaceCmd.Flags().BoolVar(&ifaceIPOnly, "ip", false, "Print only the IPv4 address (fails if none)")
	rootCmd.AddCommand(ifaceCmd)
}

func runIface(cmd *cobra.Command, args []string) error {
	name := args[0]
	insp := getApp().Inspector

	logging.Debug("inspecting interface", "iface", name)

	if ifaceIPOnly {
		ip, err := insp.GetInterfaceIP(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ip)
		return nil
	}

	ifc, err := insp.GetInterfaceConfig(name)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTERFACE\tADDRESS\tNETMASK\tMAC")
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, orDash(ifc.Address), orDash(ifc.Netmask), ifc.HardwareAddress)
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
