package xbox360

import "joyrelay/pad"

// Button bitmasks for the wired Xbox 360 controller (XInput compatible).
const (
	ButtonDPadUp    = 0x0001
	ButtonDPadDown  = 0x0002
	ButtonDPadLeft  = 0x0004
	ButtonDPadRight = 0x0008
	ButtonStart     = 0x0010
	ButtonBack      = 0x0020
	ButtonLThumb    = 0x0040
	ButtonRThumb    = 0x0080
	ButtonLShoulder = 0x0100 // Left bumper (LB)
	ButtonRShoulder = 0x0200 // Right bumper (RB)
	ButtonGuide     = 0x0400 // Xbox/Guide button (center logo)
	ButtonA         = 0x1000
	ButtonB         = 0x2000
	ButtonX         = 0x4000
	ButtonY         = 0x8000
)

// buttonBit maps logical pad buttons to their XInput bitmask.
var buttonBit = map[pad.Button]uint32{
	pad.ButtonA:             ButtonA,
	pad.ButtonB:             ButtonB,
	pad.ButtonX:             ButtonX,
	pad.ButtonY:             ButtonY,
	pad.ButtonLeftShoulder:  ButtonLShoulder,
	pad.ButtonRightShoulder: ButtonRShoulder,
	pad.ButtonBack:          ButtonBack,
	pad.ButtonStart:         ButtonStart,
	pad.ButtonLeftThumb:     ButtonLThumb,
	pad.ButtonRightThumb:    ButtonRThumb,
	pad.ButtonGuide:         ButtonGuide,
	pad.ButtonDPadUp:        ButtonDPadUp,
	pad.ButtonDPadDown:      ButtonDPadDown,
	pad.ButtonDPadLeft:      ButtonDPadLeft,
	pad.ButtonDPadRight:     ButtonDPadRight,
}
