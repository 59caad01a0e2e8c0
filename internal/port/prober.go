package port

import (
	"context"
	"net"
	"strconv"
)

// OSProber checks ports by binding TCP and UDP sockets on all addresses and
// releasing them immediately. SO_REUSEADDR is set so TIME_WAIT sockets do
// not count as in use.
type OSProber struct{}

// IsFree reports whether both TCP and UDP can bind port right now.
func (OSProber) IsFree(port int) bool {
	if port < MinPort || port > MaxPort {
		return false
	}

	lc := net.ListenConfig{Control: reuseAddr}
	addr := net.JoinHostPort("", strconv.Itoa(port))

	ln, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return false
	}
	ln.Close()

	pc, err := lc.ListenPacket(context.Background(), "udp", addr)
	if err != nil {
		return false
	}
	pc.Close()

	return true
}

// FakeProber reports the ports in Occupied as in use and everything else free.
type FakeProber struct {
	Occupied map[int]bool
}

// NewFakeProber creates a FakeProber with the given ports occupied.
func NewFakeProber(occupied ...int) *FakeProber {
	f := &FakeProber{Occupied: make(map[int]bool)}
	for _, p := range occupied {
		f.Occupied[p] = true
	}
	return f
}

// IsFree implements Prober.
func (f *FakeProber) IsFree(port int) bool {
	return !f.Occupied[port]
}
