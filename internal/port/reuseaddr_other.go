//go:build !unix

package port

import "syscall"

func reuseAddr(network, address string, c syscall.RawConn) error {
	return nil
}
