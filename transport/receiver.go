package transport

import (
	"fmt"
	"net"
	"time"

	"joyrelay/event"
	"joyrelay/internal/log"
)

// recvBufLen is generous: payloads never exceed event.MaxEncodedSize.
const recvBufLen = 1024

// Receiver owns one bound UDP socket and turns incoming datagrams into
// decoded events. It is driven by its owner calling Receive in a loop; a
// bounded timeout lets the loop check for cancellation between reads.
type Receiver struct {
	conn *net.UDPConn
	raw  log.RawLogger
	buf  [recvBufLen]byte
}

// Listen binds to host:port. Host "0.0.0.0" binds all interfaces.
func Listen(host string, port int, raw log.RawLogger) (*Receiver, error) {
	addr, err := resolve(host, port)
	if err != nil {
		return nil, fmt.Errorf("resolve %s:%d: %w", host, port, err)
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &Receiver{conn: conn, raw: raw}, nil
}

// Receive blocks for at most timeout waiting for one datagram and decodes it.
// A timeout of zero blocks indefinitely.
//
// Error classification, all per-datagram and non-fatal to the loop:
//   - ErrTimeout: no data within timeout, loop again.
//   - *InvalidPayloadError: datagram arrived but did not decode; skip it.
//
// Any other error is a socket-level failure surfaced as-is.
func (r *Receiver) Receive(timeout time.Duration) (*net.UDPAddr, event.Event, error) {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	if err := r.conn.SetReadDeadline(deadline); err != nil {
		return nil, event.Event{}, fmt.Errorf("set read deadline: %w", err)
	}

	n, addr, err := r.conn.ReadFromUDP(r.buf[:])
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return nil, event.Event{}, ErrTimeout
		}
		return nil, event.Event{}, fmt.Errorf("read datagram: %w", err)
	}
	r.raw.Log(true, r.buf[:n])

	ev, err := event.Decode(r.buf[:n])
	if err != nil {
		raw := make([]byte, n)
		copy(raw, r.buf[:n])
		return addr, event.Event{}, &InvalidPayloadError{Addr: addr, Raw: raw, Err: err}
	}
	return addr, ev, nil
}

// LocalAddr returns the bound address, useful when listening on port 0.
func (r *Receiver) LocalAddr() net.Addr { return r.conn.LocalAddr() }

func (r *Receiver) Close() error { return r.conn.Close() }
