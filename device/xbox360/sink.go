package xbox360

import (
	"fmt"
	"io"

	"joyrelay/pad"
)

// Sink implements pad.Sink by writing one wired Xbox 360 input report per
// commit to an io.Writer, typically a pipe or stream consumed by a virtual
// USB device host.
type Sink struct {
	w     io.Writer
	state InputState
}

// NewSink returns a sink writing reports to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

func (s *Sink) SetLeftStick(x, y int16)  { s.state.LX, s.state.LY = x, y }
func (s *Sink) SetRightStick(x, y int16) { s.state.RX, s.state.RY = x, y }

func (s *Sink) SetLeftTrigger(level uint8)  { s.state.LT = level }
func (s *Sink) SetRightTrigger(level uint8) { s.state.RT = level }

func (s *Sink) PressButton(b pad.Button)   { s.state.Buttons |= buttonBit[b] }
func (s *Sink) ReleaseButton(b pad.Button) { s.state.Buttons &^= buttonBit[b] }

// Commit writes the current report. The in-memory state survives a failed
// write; the next commit pushes it again.
func (s *Sink) Commit() error {
	if _, err := s.w.Write(s.state.BuildReport()); err != nil {
		return fmt.Errorf("write input report: %w", err)
	}
	return nil
}

// ResetToNeutral zeroes the state: no buttons, centered sticks, released
// triggers.
func (s *Sink) ResetToNeutral() error {
	s.state = InputState{}
	return nil
}

// State returns the current report state.
func (s *Sink) State() InputState { return s.state }
