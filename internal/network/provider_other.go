//go:build !linux

package network

import (
	"net"
)

// stdProvider reads interface tables through the net package. netlink is
// Linux only, so other platforms fall back to it.
type stdProvider struct{}

// DefaultProvider returns the platform interface provider.
func DefaultProvider() InterfaceProvider {
	return stdProvider{}
}

func (stdProvider) Interfaces() ([]string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(ifaces))
	for _, iface := range ifaces {
		names = append(names, iface.Name)
	}
	return names, nil
}

func (stdProvider) Addresses(name string) (*Addresses, error) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return nil, err
	}

	ifAddrs, err := iface.Addrs()
	if err != nil {
		return nil, err
	}

	addrs := &Addresses{}
	for _, a := range ifAddrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		if rec, ok := ipv4Record(ipnet); ok {
			addrs.IPv4 = append(addrs.IPv4, rec)
		}
	}

	encap := ""
	if iface.Flags&net.FlagLoopback != 0 {
		encap = encapLoopback
	}
	if rec, ok := linkRecord(encap, iface.HardwareAddr); ok {
		addrs.Link = append(addrs.Link, rec)
	}
	return addrs, nil
}
