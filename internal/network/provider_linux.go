//go:build linux

package network

import (
	"fmt"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

// netlinkProvider reads interface tables over rtnetlink.
type netlinkProvider struct{}

// DefaultProvider returns the platform interface provider.
func DefaultProvider() InterfaceProvider {
	return netlinkProvider{}
}

func (netlinkProvider) Interfaces() ([]string, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(links))
	for _, link := range links {
		names = append(names, link.Attrs().Name)
	}
	return names, nil
}

func (netlinkProvider) Addresses(name string) (*Addresses, error) {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return nil, err
	}

	addrList, err := netlink.AddrList(link, unix.AF_INET)
	if err != nil {
		return nil, fmt.Errorf("failed to list ipv4 addresses: %w", err)
	}

	addrs := &Addresses{}
	for _, addr := range addrList {
		if addr.IPNet == nil {
			continue
		}
		if rec, ok := ipv4Record(addr.IPNet); ok {
			addrs.IPv4 = append(addrs.IPv4, rec)
		}
	}

	attrs := link.Attrs()
	if rec, ok := linkRecord(attrs.EncapType, attrs.HardwareAddr); ok {
		addrs.Link = append(addrs.Link, rec)
	}
	return addrs, nil
}
