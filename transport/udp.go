// Package transport owns the datagram socket shared by both chat loops.
// Delivery is best effort: no acknowledgement, no retry, no framing.
// One datagram carries exactly one chat message.
package transport

import (
	"chat-term/errors"
	"fmt"
	"net"
	"strconv"
)

// UDPTransport wraps a UDP socket bound on every local interface.
// Send and Receive may be called concurrently, net.UDPConn is safe for that.
type UDPTransport struct {
	conn    *net.UDPConn
	maxSize int
}

// Open binds the local port. A port of 0 lets the kernel choose one.
func Open(port, maxSize int) (*UDPTransport, error) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{Port: port})
	if err != nil {
		return nil, fmt.Errorf("%w: port %d: %w", errors.ErrBindFailure, port, err)
	}
	return &UDPTransport{conn: conn, maxSize: maxSize}, nil
}

// ResolvePeer resolves the fixed destination once, at startup.
func ResolvePeer(host string, port int) (*net.UDPAddr, error) {
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidPeerConfig, err)
	}
	return addr, nil
}

// Send writes one datagram. An empty payload is a valid, empty datagram.
func (t *UDPTransport) Send(peer *net.UDPAddr, payload []byte) error {
	if _, err := t.conn.WriteToUDP(payload, peer); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrSendFailure, err)
	}
	return nil
}

// Receive blocks until the next datagram arrives.
// Datagrams longer than maxSize are truncated by the kernel.
// Once Close has been called it returns net.ErrClosed.
func (t *UDPTransport) Receive() ([]byte, *net.UDPAddr, error) {
	buffer := make([]byte, t.maxSize)
	n, from, err := t.conn.ReadFromUDP(buffer)
	if err != nil {
		return nil, nil, err
	}
	return buffer[:n], from, nil
}

func (t *UDPTransport) LocalAddr() *net.UDPAddr {
	return t.conn.LocalAddr().(*net.UDPAddr)
}

func (t *UDPTransport) Close() error {
	return t.conn.Close()
}
