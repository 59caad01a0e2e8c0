package network

import (
	"fmt"
	"net"
	"sync"
)

// InterfaceProvider reads the host's interface tables.
type InterfaceProvider interface {
	// Interfaces returns the names of all known interfaces.
	Interfaces() ([]string, error)

	// Addresses returns the family-keyed address records of name.
	Addresses(name string) (*Addresses, error)
}

// Addresses holds an interface's address records by family.
type Addresses struct {
	IPv4 []IPv4Record
	Link []LinkRecord
}

// IPv4Record is one IPv4 address with its dotted netmask.
type IPv4Record struct {
	Address string
	Netmask string
}

// LinkRecord is one link-layer address.
type LinkRecord struct {
	Address string
}

// Link encapsulations that always carry a hardware address.
const (
	encapEther    = "ether"
	encapLoopback = "loopback"
)

// zeroMAC is reported for loopback and ethernet links whose address is all
// zeros; netlink returns those as empty.
var zeroMAC = net.HardwareAddr(make([]byte, 6)).String()

// linkRecord builds the link-layer record for an interface. Encapsulations
// without an L2 address (tun reports "none") have no record.
func linkRecord(encap string, hw net.HardwareAddr) (LinkRecord, bool) {
	if len(hw) > 0 {
		return LinkRecord{Address: hw.String()}, true
	}
	switch encap {
	case encapEther, encapLoopback:
		return LinkRecord{Address: zeroMAC}, true
	}
	return LinkRecord{}, false
}

// dottedMask renders a 4-byte mask as "255.255.255.0". Any other length
// renders as the empty string.
func dottedMask(m net.IPMask) string {
	if len(m) != net.IPv4len {
		return ""
	}
	return net.IP(m).String()
}

// ipv4Record converts ipnet to a record. IPv4 addresses held in 16-byte form
// carry their mask in the last four bytes.
func ipv4Record(ipnet *net.IPNet) (IPv4Record, bool) {
	ip4 := ipnet.IP.To4()
	if ip4 == nil {
		return IPv4Record{}, false
	}
	mask := ipnet.Mask
	if len(mask) == net.IPv6len {
		mask = mask[12:]
	}
	return IPv4Record{Address: ip4.String(), Netmask: dottedMask(mask)}, true
}

// FakeProvider implements InterfaceProvider for testing.
type FakeProvider struct {
	mu     sync.RWMutex
	ifaces map[string]*Addresses
	order  []string

	// Err is returned by every call if set.
	Err error
}

// NewFakeProvider creates an empty FakeProvider.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{ifaces: make(map[string]*Addresses)}
}

// AddInterface registers an interface with the given records.
func (f *FakeProvider) AddInterface(name string, addrs *Addresses) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if addrs == nil {
		addrs = &Addresses{}
	}
	if _, ok := f.ifaces[name]; !ok {
		f.order = append(f.order, name)
	}
	f.ifaces[name] = addrs
}

func (f *FakeProvider) Interfaces() ([]string, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]string(nil), f.order...), nil
}

func (f *FakeProvider) Addresses(name string) (*Addresses, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	addrs, ok := f.ifaces[name]
	if !ok {
		return nil, fmt.Errorf("no such interface: %s", name)
	}
	return addrs, nil
}
