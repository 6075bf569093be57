package transport

import (
	"fmt"
	"net"

	"joyrelay/event"
	"joyrelay/internal/log"
)

// Sender owns one outbound UDP socket for its lifetime and fires one encoded
// event per Send call. Failures are reported to the caller but never retried;
// the caller keeps operating.
type Sender struct {
	conn *net.UDPConn
	raw  log.RawLogger
}

// Dial opens the sender's socket towards host:port.
func Dial(host string, port int, raw log.RawLogger) (*Sender, error) {
	addr, err := resolve(host, port)
	if err != nil {
		return nil, fmt.Errorf("resolve %s:%d: %w", host, port, err)
	}
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &Sender{conn: conn, raw: raw}, nil
}

// Send encodes and fires one datagram.
func (s *Sender) Send(ev event.Event) error {
	data := event.Encode(ev)
	s.raw.Log(false, data)
	if _, err := s.conn.Write(data); err != nil {
		return fmt.Errorf("send event: %w", err)
	}
	return nil
}

// RemoteAddr returns the destination address.
func (s *Sender) RemoteAddr() net.Addr { return s.conn.RemoteAddr() }

func (s *Sender) Close() error { return s.conn.Close() }
