package network

import (
	"math/rand/v2"
	"net"
)

// macPrefix is the Xen OUI used for generated guest and BMC addresses.
var macPrefix = [3]byte{0x00, 0x16, 0x3e}

// RandomMAC returns a locally generated hardware address under macPrefix.
// The fourth octet stays below 0x80.
func RandomMAC() net.HardwareAddr {
	return net.HardwareAddr{
		macPrefix[0], macPrefix[1], macPrefix[2],
		byte(rand.IntN(0x80)),
		byte(rand.IntN(0x100)),
		byte(rand.IntN(0x100)),
	}
}
