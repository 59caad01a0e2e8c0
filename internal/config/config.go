package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/firefly-engineering/vbmc-host/internal/errors"
	"github.com/firefly-engineering/vbmc-host/internal/port"
)

const (
	DefaultConfigDir  = "/etc/vbmc-host"
	DefaultConfigFile = "config.toml"
	DefaultEnvFile    = ".env"
	DefaultBridge     = "br0"

	// IPMI ports handed to emulated BMCs start at 6230 by convention.
	DefaultPortFrom = 6230
	DefaultPortTo   = 6330
)

// Environment variables that override file settings.
const (
	EnvBridge   = "VBMC_BRIDGE"
	EnvPortFrom = "VBMC_PORT_FROM"
	EnvPortTo   = "VBMC_PORT_TO"
	EnvVerbose  = "VBMC_VERBOSE"
	EnvLogJSON  = "VBMC_LOG_JSON"
)

// interfaceNameRegex matches Linux interface names (IFNAMSIZ - 1 = 15 chars).
var interfaceNameRegex = regexp.MustCompile(`^[A-Za-z0-9_.:-]{1,15}$`)

// ValidateInterfaceName checks that name could be a Linux interface name.
func ValidateInterfaceName(name string) error {
	if name == "" {
		return fmt.Errorf("interface name cannot be empty")
	}
	if !interfaceNameRegex.MatchString(name) {
		return fmt.Errorf("invalid interface name %q: must be at most 15 characters of letters, digits, '_', '.', ':' or '-'", name)
	}
	return nil
}

// Config is the vbmc-host configuration from config.toml
type Config struct {
	Bridge string    `toml:"bridge"`
	Ports  PortRange `toml:"ports"`
	Log    LogConfig `toml:"log"`
}

// PortRange is the half-open range [From, To) scanned for free ports.
type PortRange struct {
	From int `toml:"from"`
	To   int `toml:"to"`
}

// LogConfig holds logging preferences
type LogConfig struct {
	Verbose bool `toml:"verbose"`
	JSON    bool `toml:"json"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Bridge: DefaultBridge,
		Ports: PortRange{
			From: DefaultPortFrom,
			To:   DefaultPortTo,
		},
	}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	return filepath.Join(DefaultConfigDir, DefaultConfigFile)
}

// Validate checks that the Config is valid.
func (c *Config) Validate() error {
	if err := ValidateInterfaceName(c.Bridge); err != nil {
		return fmt.Errorf("bridge: %w", err)
	}
	if err := port.ValidateRange(c.Ports.From, c.Ports.To); err != nil {
		return fmt.Errorf("ports: %w", err)
	}
	return nil
}

// Load reads the config file at path over the defaults, applies environment
// overrides and validates the result. An empty path means DefaultPath, which
// may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	required := path != ""
	if !required {
		path = DefaultPath()
	}

	if err := cfg.readFile(path, required); err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, errors.ConfigError("invalid environment override", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.ConfigError("invalid config", err)
	}

	return cfg, nil
}

func (c *Config) readFile(path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.ConfigError("failed to read config", err)
	}

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.ConfigError("failed to parse config", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.ConfigError(fmt.Sprintf("unknown config keys in %s: %s", path, strings.Join(keys, ", ")), nil)
	}

	return nil
}

// LoadEnvFile loads KEY=value pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to load %s", path), err)
	}
	return nil
}

// ApplyEnv overrides settings from VBMC_* environment variables.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvBridge); ok && v != "" {
		c.Bridge = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvPortFrom, &c.Ports.From},
		{EnvPortTo, &c.Ports.To},
	}
	for _, e := range ints {
		v, ok := os.LookupEnv(e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvVerbose, &c.Log.Verbose},
		{EnvLogJSON, &c.Log.JSON},
	}
	for _, e := range bools {
		v, ok := os.LookupEnv(e.key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = b
	}

	return nil
}
