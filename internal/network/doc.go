// Package network answers one-shot questions about host network configuration.
//
// # Interface Configuration
//
// An Inspector reads the interface tables through an InterfaceProvider
// (netlink on Linux, the net package elsewhere):
//
//	insp := network.NewInspector()
//	cfg, err := insp.GetInterfaceConfig("eth0")
//	// cfg.Address, cfg.Netmask empty if eth0 has no IPv4
//	ip, err := insp.GetInterfaceIP("eth0") // MissingAddress if none
//
// Unknown interfaces and interfaces without a link-layer record fail with an
// InterfaceNotFound-class error.
//
// # Bridge Addresses
//
// GetBridgeIPs runs `ip -4 addr show <bridge>` and parses the "inet " lines.
// Failure is logged as a warning and reported as an empty slice, never as an
// error:
//
//	ips := insp.GetBridgeIPs(ctx, network.DefaultBridge)
//
// # Synthetic Hardware Addresses
//
// RandomMAC generates addresses under the 00:16:3e prefix for emulated NICs.
package network
