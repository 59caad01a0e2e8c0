package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vbmc-host/internal/app"
	"github.com/firefly-engineering/vbmc-host/internal/config"
	"github.com/firefly-engineering/vbmc-host/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "vbmc-host",
	Short: "Host network and process helpers for virtual BMCs",
	Long: `vbmc-host answers the host questions a virtual BMC emulator needs
before it can bring up an emulated BMC:

  - IPv4 address, netmask and MAC of an interface
  - IPv4 addresses of the host bridge
  - free ports for IPMI listeners, compressed into ranges
  - the default gateway and a fresh synthetic MAC

It also runs one-shot commands with uniform logging and error reporting.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default "+config.DefaultPath()+")")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// setup loads configuration and builds the default app unless one has
// already been installed.
func setup(cmd *cobra.Command, args []string) error {
	logging.Setup(verbose, jsonOutput, os.Stderr)

	if app.Default != nil {
		return nil
	}

	if err := config.LoadEnvFile(config.DefaultEnvFile); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Log.Verbose || cfg.Log.JSON {
		logging.Setup(logging.Verbose || cfg.Log.Verbose, jsonOutput || cfg.Log.JSON, os.Stderr)
	}
	logging.Debug("loaded config", "bridge", cfg.Bridge, "from", cfg.Ports.From, "to", cfg.Ports.To)

	app.SetDefault(app.New(app.WithConfig(cfg), app.WithLogger(logging.Logger)))
	return nil
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logWarning = logging.UserWarning
)
