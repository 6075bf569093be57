// Package pad reconstructs continuous gamepad state from a stream of discrete
// joystick events and pushes it to a HID sink.
package pad

// Button identifies a target gamepad button, independent of the source button
// index it was mapped from.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonBack
	ButtonStart
	ButtonLeftThumb
	ButtonRightThumb
	ButtonGuide
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
)

var buttonNames = map[Button]string{
	ButtonA:             "A",
	ButtonB:             "B",
	ButtonX:             "X",
	ButtonY:             "Y",
	ButtonLeftShoulder:  "LB",
	ButtonRightShoulder: "RB",
	ButtonBack:          "Back",
	ButtonStart:         "Start",
	ButtonLeftThumb:     "LThumb",
	ButtonRightThumb:    "RThumb",
	ButtonGuide:         "Guide",
	ButtonDPadUp:        "DPadUp",
	ButtonDPadDown:      "DPadDown",
	ButtonDPadLeft:      "DPadLeft",
	ButtonDPadRight:     "DPadRight",
}

func (b Button) String() string {
	if n, ok := buttonNames[b]; ok {
		return n
	}
	return "Button(?)"
}

// Sink is the virtual HID device that mapped state is pushed to. The mapper
// never expects the sink to poll: every state-changing event ends with a
// Commit call. How the sink materializes state into an OS-level device is its
// own business.
type Sink interface {
	SetLeftStick(x, y int16)
	SetRightStick(x, y int16)
	SetLeftTrigger(level uint8)
	SetRightTrigger(level uint8)
	PressButton(b Button)
	ReleaseButton(b Button)
	// Commit pushes the accumulated state to the device.
	Commit() error
	// ResetToNeutral returns the device to its all-neutral state: no buttons
	// held, sticks centered, triggers released. A Commit follows.
	ResetToNeutral() error
}
