// Package transport moves encoded joystick events over UDP.
//
// The protocol is one event per datagram, fire-and-forget: no acknowledgment,
// no retry, no ordering. Sender identity is the per-packet source address;
// there is no handshake or connection state.
package transport

import (
	"errors"
	"fmt"
	"net"
)

// DefaultPort is the UDP port used when none is configured.
const DefaultPort = 5005

// ErrTimeout reports that a Receive call hit its poll timeout with no data.
// It is an expected condition, not a failure; the owning loop retries.
var ErrTimeout = errors.New("transport: receive timed out")

// InvalidPayloadError reports a datagram whose payload did not decode. The
// raw bytes and source address are kept so the loop owner can log them.
type InvalidPayloadError struct {
	Addr *net.UDPAddr
	Raw  []byte
	Err  error
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("transport: invalid payload from %s: %v", e.Addr, e.Err)
}

func (e *InvalidPayloadError) Unwrap() error { return e.Err }

func resolve(host string, port int) (*net.UDPAddr, error) {
	return net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", host, port))
}
