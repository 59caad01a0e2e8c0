// Package config provides configuration loading for vbmc-host.
//
// # Configuration File
//
// Settings are read from /etc/vbmc-host/config.toml (or --config):
//
//	bridge = "br0"
//
//	[ports]
//	from = 6230 # inclusive
//	to   = 6330 # exclusive
//
//	[log]
//	verbose = false
//	json    = false
//
// Unknown keys are rejected.
//
// # Environment Overrides
//
// After the file, VBMC_BRIDGE, VBMC_PORT_FROM, VBMC_PORT_TO, VBMC_VERBOSE and
// VBMC_LOG_JSON override the matching settings. LoadEnvFile can seed them
// from a .env file first:
//
//	_ = config.LoadEnvFile(config.DefaultEnvFile)
//	cfg, err := config.Load("")
package config
