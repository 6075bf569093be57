package pad

import (
	"sort"

	"joyrelay/event"
)

// Semantic roles of the mapped axis indices.
const (
	AxisLeftX = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLeftTrigger
	AxisRightTrigger
	AxisAux3
	AxisAux4

	mappedAxes = 8

	// maxTrackedAxes bounds the display-only slots kept for axes beyond the
	// mapped set, so a hostile stream cannot grow the state without limit.
	maxTrackedAxes = 64
)

// AxisMax is the native joystick axis range bound. Values outside
// [-AxisMax, AxisMax] are clamped, never rejected.
const AxisMax = 32767

// buttonMap is the static table from source button index to target button.
// Indices outside the table are no-ops.
var buttonMap = map[int]Button{
	0:  ButtonA,
	1:  ButtonB,
	2:  ButtonX,
	3:  ButtonY,
	4:  ButtonLeftShoulder,
	5:  ButtonRightShoulder,
	6:  ButtonBack,
	7:  ButtonStart,
	8:  ButtonLeftThumb,
	9:  ButtonRightThumb,
	10: ButtonGuide,
	11: ButtonDPadUp,
	12: ButtonDPadDown,
	13: ButtonDPadLeft,
	14: ButtonDPadRight,
}

// Session owns the controller state for one receiver lifetime, from bind to
// teardown. It is the sole mutator of its state; callers serialize Apply.
type Session struct {
	sink    Sink
	axes    map[int]int32
	buttons map[Button]bool
}

// NewSession creates a session with all axes neutral. Trigger axes start at
// the range minimum: a fully released trigger in the pre-normalization
// convention.
func NewSession(sink Sink) *Session {
	s := &Session{sink: sink}
	s.seed()
	return s
}

func (s *Session) seed() {
	s.axes = make(map[int]int32, mappedAxes)
	for i := 0; i < mappedAxes; i++ {
		s.axes[i] = 0
	}
	s.axes[AxisLeftTrigger] = -AxisMax
	s.axes[AxisRightTrigger] = -AxisMax
	s.buttons = make(map[Button]bool)
}

// Apply maps one event onto the controller state and commits the result to
// the sink. Unrecognized kinds are valid input and are ignored. The only
// errors are sink commit failures; internal state is updated regardless, so
// at most that one commit is missed.
func (s *Session) Apply(ev event.Event) error {
	switch {
	case ev.Kind.IsAxis():
		return s.applyAxis(ev.Number, ev.Value)
	case ev.Kind.IsButton():
		return s.applyButton(ev.Number, ev.Value)
	default:
		return nil
	}
}

func (s *Session) applyAxis(number int, value int32) error {
	if _, ok := s.axes[number]; !ok {
		// Unmapped axis: track the last value for display, touch nothing on
		// the device.
		if len(s.axes) < maxTrackedAxes {
			s.axes[number] = value
		}
		return nil
	}
	s.axes[number] = value

	switch number {
	case AxisLeftX, AxisLeftY:
		x, y := s.LeftStick()
		s.sink.SetLeftStick(x, y)
	case AxisRightX, AxisRightY:
		x, y := s.RightStick()
		s.sink.SetRightStick(x, y)
	case AxisLeftTrigger:
		s.sink.SetLeftTrigger(triggerLevel(value))
	case AxisRightTrigger:
		s.sink.SetRightTrigger(triggerLevel(value))
	}
	// Aux axes 6 and 7 have no slot on the target device; the state is still
	// committed, which is a harmless re-push.
	if err := s.sink.Commit(); err != nil {
		return err
	}
	return nil
}

func (s *Session) applyButton(number int, value int32) error {
	b, ok := buttonMap[number]
	if !ok {
		return nil
	}
	// Any nonzero value is a press. Re-pressing or re-releasing is idempotent:
	// the set does not change and the same state is pushed again, matching the
	// at-least-once delivery of the transport.
	if value != 0 {
		s.buttons[b] = true
		s.sink.PressButton(b)
	} else {
		delete(s.buttons, b)
		s.sink.ReleaseButton(b)
	}
	return s.sink.Commit()
}

// Reset returns the session and the sink to the all-neutral state and commits
// it, so a teardown never leaves a stuck input on the device.
func (s *Session) Reset() error {
	s.seed()
	if err := s.sink.ResetToNeutral(); err != nil {
		return err
	}
	return s.sink.Commit()
}

// Axis returns the last-known raw value for an axis index.
func (s *Session) Axis(number int) (int32, bool) {
	v, ok := s.axes[number]
	return v, ok
}

// LeftStick derives the left stick pair from axes 0 and 1. The source Y
// convention is inverted relative to the target device, so Y is negated.
func (s *Session) LeftStick() (x, y int16) {
	return clampAxis(s.axes[AxisLeftX]), -clampAxis(s.axes[AxisLeftY])
}

// RightStick derives the right stick pair from axes 2 and 3, Y negated.
func (s *Session) RightStick() (x, y int16) {
	return clampAxis(s.axes[AxisRightX]), -clampAxis(s.axes[AxisRightY])
}

// LeftTrigger derives the 0..255 left trigger level from axis 4.
func (s *Session) LeftTrigger() uint8 { return triggerLevel(s.axes[AxisLeftTrigger]) }

// RightTrigger derives the 0..255 right trigger level from axis 5.
func (s *Session) RightTrigger() uint8 { return triggerLevel(s.axes[AxisRightTrigger]) }

// ButtonsDown returns the currently pressed buttons in ascending order.
func (s *Session) ButtonsDown() []Button {
	out := make([]Button, 0, len(s.buttons))
	for b := range s.buttons {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func clampAxis(v int32) int16 {
	if v > AxisMax {
		return AxisMax
	}
	if v < -AxisMax {
		return -AxisMax
	}
	return int16(v)
}

// triggerLevel normalizes a native axis value to a 0..255 trigger level.
// Truncation toward zero matches the established behavior of existing
// consumers.
func triggerLevel(v int32) uint8 {
	c := int64(clampAxis(v))
	return uint8((c + AxisMax) * 255 / (2 * AxisMax))
}
