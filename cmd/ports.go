package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vbmc-host/internal/errors"
	"github.com/firefly-engineering/vbmc-host/internal/logging"
	"github.com/firefly-engineering/vbmc-host/internal/port"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "Find free ports for BMC listeners",
}

var portsFreeCmd = &cobra.Command{
	Use:   "free [start end]",
	Short: "List free ports in [start, end)",
	Long: `List ports in the half-open range [start, end) that can be bound right now.
Without arguments the configured range is scanned.

Results are advisory: another process may take a port before you bind it.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return errors.ValidationError(fmt.Sprintf("expected no arguments or <start> <end>, got %d", len(args)))
		}
		return nil
	},
	RunE: runPortsFree,
}

var portsCheckCmd = &cobra.Command{
	Use:   "check <port>",
	Short: "Report whether a port is in use",
	Args:  cobra.ExactArgs(1),
	RunE:  runPortsCheck,
}

var portsAllocCmd = &cobra.Command{
	Use:   "alloc",
	Short: "Print the first free port in the configured range",
	Args:  cobra.NoArgs,
	RunE:  runPortsAlloc,
}

var portsAsRanges bool

func init() {
	portsFreeCmd.Flags().BoolVarP(&portsAsRanges, "ranges", "r", false, "Print contiguous ranges instead of single ports")
	portsCmd.AddCommand(portsFreeCmd, portsCheckCmd, portsAllocCmd)
	rootCmd.AddCommand(portsCmd)
}

func runPortsFree(cmd *cobra.Command, args []string) error {
	start, end, err := portRange(args)
	if err != nil {
		return err
	}

	logging.Debug("scanning ports", "from", start, "to", end)

	free := getApp().Scanner.FindFree(start, end)
	if len(free) == 0 {
		logInfo("No free ports in %d-%d", start, end-1)
		return nil
	}

	out := cmd.OutOrStdout()
	if portsAsRanges {
		fmt.Fprintln(out, port.FormatRanges(port.Ranges(free)))
		return nil
	}
	for _, p := range free {
		fmt.Fprintln(out, p)
	}
	return nil
}

func runPortsCheck(cmd *cobra.Command, args []string) error {
	p, err := parsePort(args[0])
	if err != nil {
		return err
	}

	state := "free"
	if getApp().Scanner.IsOpen(p) {
		state = "open"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", p, state)
	return nil
}

func runPortsAlloc(cmd *cobra.Command, args []string) error {
	c := cfg()
	p, err := getApp().Scanner.FirstFree(c.Ports.From, c.Ports.To)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), p)
	return nil
}
