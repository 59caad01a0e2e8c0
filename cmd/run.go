package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vbmc-host/internal/errors"
)

var runAsLine bool

var runCmd = &cobra.Command{
	Use:   "run -- <command> [args...]",
	Short: "Run a command and print its standard output",
	Long: `Run a command once, logging it, and print its standard output unchanged.

Arguments are passed to the process as given; no shell is involved. With
--line a single argument is split into words using shell quoting rules.
A failing command exits with a message naming the command and the cause.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runAsLine, "line", false, "Treat the single argument as a command line")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	r := getApp().Runner

	var (
		out []byte
		err error
	)
	if runAsLine {
		if len(args) != 1 {
			return errors.ValidationError("usage: vbmc-host run --line \"<command line>\"")
		}
		out, err = r.RunLine(cmd.Context(), args[0])
	} else {
		out, err = r.Run(cmd.Context(), args...)
	}
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
