package network

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"slices"
	"strings"

	"github.com/jackpal/gateway"

	"github.com/firefly-engineering/vbmc-host/internal/errors"
	"github.com/firefly-engineering/vbmc-host/internal/logging"
	"github.com/firefly-engineering/vbmc-host/internal/system"
)

// DefaultBridge is the bridge queried when no name is given.
const DefaultBridge = "br0"

// InterfaceConfig is the IPv4 and link-layer configuration of one interface.
// Address and Netmask are both empty when the interface has no IPv4 record.
type InterfaceConfig struct {
	Address         string `json:"address,omitempty"`
	Netmask         string `json:"netmask,omitempty"`
	HardwareAddress string `json:"hardwareAddress"`
}

// HasAddress reports whether an IPv4 address is configured.
func (c *InterfaceConfig) HasAddress() bool {
	return c.Address != ""
}

// Inspector answers one-shot questions about host network configuration.
// Every call re-queries the system.
type Inspector struct {
	provider InterfaceProvider
	exec     system.CommandExecutor
	log      *slog.Logger
	gateway  func() (net.IP, error)
}

// Option configures an Inspector
type Option func(*Inspector)

// WithProvider sets the interface table provider
func WithProvider(p InterfaceProvider) Option {
	return func(i *Inspector) {
		i.provider = p
	}
}

// WithExecutor sets the executor used for the bridge address command
func WithExecutor(e system.CommandExecutor) Option {
	return func(i *Inspector) {
		i.exec = e
	}
}

// WithLogger sets the logger handle. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(i *Inspector) {
		i.log = logging.OrDiscard(l)
	}
}

// WithGatewayDiscoverer replaces default gateway discovery
func WithGatewayDiscoverer(fn func() (net.IP, error)) Option {
	return func(i *Inspector) {
		i.gateway = fn
	}
}

// NewInspector creates an Inspector backed by the OS unless overridden.
func NewInspector(opts ...Option) *Inspector {
	i := &Inspector{}
	for _, opt := range opts {
		opt(i)
	}
	if i.provider == nil {
		i.provider = DefaultProvider()
	}
	if i.exec == nil {
		i.exec = system.DefaultExecutor()
	}
	if i.log == nil {
		i.log = logging.Logger
	}
	if i.gateway == nil {
		i.gateway = gateway.DiscoverGateway
	}
	return i
}

// GetInterfaceConfig returns the first IPv4 address and netmask of name and
// its hardware address.
func (i *Inspector) GetInterfaceConfig(name string) (*InterfaceConfig, error) {
	names, err := i.provider.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces: %w", err)
	}
	if !slices.Contains(names, name) {
		return nil, errors.InterfaceNotFound(name)
	}

	addrs, err := i.provider.Addresses(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read addresses of %s: %w", name, err)
	}

	cfg := &InterfaceConfig{}
	if len(addrs.IPv4) > 0 {
		cfg.Address = addrs.IPv4[0].Address
		cfg.Netmask = addrs.IPv4[0].Netmask
	}
	if len(addrs.Link) == 0 {
		return nil, errors.NoLinkAddress(name)
	}
	cfg.HardwareAddress = addrs.Link[0].Address

	i.log.Debug("interface config", "iface", name, "addr", cfg.Address, "mask", cfg.Netmask, "mac", cfg.HardwareAddress)
	return cfg, nil
}

// GetInterfaceIP returns the IPv4 address of name, or a MissingAddress error
// when none is configured.
func (i *Inspector) GetInterfaceIP(name string) (string, error) {
	cfg, err := i.GetInterfaceConfig(name)
	if err != nil {
		return "", err
	}
	if !cfg.HasAddress() {
		return "", errors.MissingAddress(name)
	}
	return cfg.Address, nil
}

// GetBridgeIPs lists the IPv4 addresses of bridge using `ip -4 addr show`.
//
// Unlike the other queries this never fails: if the command cannot run or
// exits non-zero, a warning is logged and an empty slice is returned.
func (i *Inspector) GetBridgeIPs(ctx context.Context, bridge string) []string {
	if bridge == "" {
		bridge = DefaultBridge
	}

	out, err := i.exec.Output(ctx, "ip", "-4", "addr", "show", bridge)
	if err != nil {
		i.log.Warn("failed to list bridge addresses",
			"bridge", bridge,
			"error", err,
			"stderr", strings.TrimSpace(system.Stderr(err)))
		return []string{}
	}

	return ParseInetAddrs(string(out))
}

// ParseInetAddrs extracts IPv4 addresses from `ip addr show` output. Each
// line containing "inet " contributes its second field up to the "/".
func ParseInetAddrs(output string) []string {
	ips := make([]string, 0)
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "inet ") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		ip, _, _ := strings.Cut(fields[1], "/")
		ips = append(ips, ip)
	}
	return ips
}

// DefaultGateway returns the IPv4 default gateway of the host.
func (i *Inspector) DefaultGateway() (string, error) {
	ip, err := i.gateway()
	if err != nil {
		return "", fmt.Errorf("failed to discover default gateway: %w", err)
	}
	return ip.String(), nil
}
