package transport_test

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joyrelay/event"
	"joyrelay/pad"
	"joyrelay/transport"
)

const recvTimeout = 2 * time.Second

func listen(t *testing.T) (*transport.Receiver, int) {
	t.Helper()
	recv, err := transport.Listen("127.0.0.1", 0, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = recv.Close() })
	return recv, recv.LocalAddr().(*net.UDPAddr).Port
}

func TestSendReceiveRoundTrip(t *testing.T) {
	recv, port := listen(t)

	sender, err := transport.Dial("127.0.0.1", port, nil)
	require.NoError(t, err)
	defer sender.Close()

	want := event.Event{Kind: event.KindAxis, Time: 3656941, Number: 1, Value: -171}
	require.NoError(t, sender.Send(want))

	addr, got, err := recv.Receive(recvTimeout)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	require.NotNil(t, addr)
	assert.Equal(t, "127.0.0.1", addr.IP.String())
}

func TestReceiveTimeout(t *testing.T) {
	recv, _ := listen(t)

	start := time.Now()
	_, _, err := recv.Receive(50 * time.Millisecond)
	assert.ErrorIs(t, err, transport.ErrTimeout)
	assert.Less(t, time.Since(start), recvTimeout)

	// A timeout is not fatal: the receiver keeps working afterwards.
	sender, err := transport.Dial("127.0.0.1", recv.LocalAddr().(*net.UDPAddr).Port, nil)
	require.NoError(t, err)
	defer sender.Close()

	want := event.Event{Kind: event.KindButton, Number: 3, Value: 1}
	require.NoError(t, sender.Send(want))

	_, got, err := recv.Receive(recvTimeout)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReceiveInvalidPayload(t *testing.T) {
	recv, port := listen(t)

	raw, err := net.Dial("udp", recv.LocalAddr().String())
	require.NoError(t, err)
	defer raw.Close()
	_, err = raw.Write([]byte("definitely not json"))
	require.NoError(t, err)

	_, _, err = recv.Receive(recvTimeout)
	var ipe *transport.InvalidPayloadError
	require.ErrorAs(t, err, &ipe)
	assert.Equal(t, []byte("definitely not json"), ipe.Raw)
	assert.NotNil(t, ipe.Addr)
	assert.ErrorIs(t, err, event.ErrMalformed)

	// The bad datagram is skipped, not fatal.
	sender, err := transport.Dial("127.0.0.1", port, nil)
	require.NoError(t, err)
	defer sender.Close()

	want := event.Event{Kind: event.KindAxis, Number: 0, Value: 100}
	require.NoError(t, sender.Send(want))

	_, got, err := recv.Receive(recvTimeout)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// orderedSink records button transitions only.
type orderedSink struct {
	transitions []string
}

func (o *orderedSink) SetLeftStick(x, y int16)     {}
func (o *orderedSink) SetRightStick(x, y int16)    {}
func (o *orderedSink) SetLeftTrigger(level uint8)  {}
func (o *orderedSink) SetRightTrigger(level uint8) {}
func (o *orderedSink) Commit() error               { return nil }
func (o *orderedSink) ResetToNeutral() error       { return nil }

func (o *orderedSink) PressButton(b pad.Button) {
	o.transitions = append(o.transitions, "press "+b.String())
}

func (o *orderedSink) ReleaseButton(b pad.Button) {
	o.transitions = append(o.transitions, "release "+b.String())
}

func TestEndToEndPressRelease(t *testing.T) {
	recv, port := listen(t)

	sender, err := transport.Dial("127.0.0.1", port, nil)
	require.NoError(t, err)
	defer sender.Close()

	sink := &orderedSink{}
	sess := pad.NewSession(sink)

	require.NoError(t, sender.Send(event.Event{Kind: event.KindButton, Time: 1, Number: 0, Value: 1}))
	require.NoError(t, sender.Send(event.Event{Kind: event.KindButton, Time: 2, Number: 0, Value: 0}))

	for i := 0; i < 2; i++ {
		_, ev, err := recv.Receive(recvTimeout)
		require.NoError(t, err)
		require.NoError(t, sess.Apply(ev))
	}

	assert.Equal(t, []string{"press A", "release A"}, sink.transitions)
	assert.Empty(t, sess.ButtonsDown())
}
