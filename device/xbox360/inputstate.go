// Package xbox360 materializes mapped controller state as wired Xbox 360
// USB input reports.
package xbox360

import (
	"encoding/binary"
	"io"
)

// ReportSize is the length of the wired Xbox 360 input report.
const ReportSize = 20

// InputState is the controller state used to build a report. Fields follow
// XInput's C API: a button bitfield, 0-255 triggers and signed 16-bit sticks.
type InputState struct {
	Buttons uint32
	LT, RT  uint8
	LX, LY  int16
	RX, RY  int16
}

// BuildReport encodes the state into the 20-byte Xbox 360 wired USB input
// report. Layout (indices in the returned slice):
//
//	 0: 0x00              - Report ID
//	 1: 0x14              - Payload size (20 bytes)
//	 2: Buttons (low byte)
//	 3: Buttons (high byte)
//	 4: LT (0-255)
//	 5: RT (0-255)
//	 6-7: LX (little-endian int16)
//	 8-9: LY (little-endian int16)
//	10-11: RX (little-endian int16)
//	12-13: RY (little-endian int16)
//	14-19: Reserved / zero
func (x *InputState) BuildReport() []byte {
	b := make([]byte, ReportSize)
	b[0] = 0x00
	b[1] = 0x14
	binary.LittleEndian.PutUint16(b[2:4], uint16(x.Buttons&0xffff))
	b[4] = x.LT
	b[5] = x.RT
	binary.LittleEndian.PutUint16(b[6:8], uint16(x.LX))
	binary.LittleEndian.PutUint16(b[8:10], uint16(x.LY))
	binary.LittleEndian.PutUint16(b[10:12], uint16(x.RX))
	binary.LittleEndian.PutUint16(b[12:14], uint16(x.RY))
	return b
}

// ParseReport decodes a 20-byte wired input report back into an InputState.
func ParseReport(data []byte) (InputState, error) {
	var x InputState
	if len(data) < ReportSize {
		return x, io.ErrUnexpectedEOF
	}
	x.Buttons = uint32(binary.LittleEndian.Uint16(data[2:4]))
	x.LT = data[4]
	x.RT = data[5]
	x.LX = int16(binary.LittleEndian.Uint16(data[6:8]))
	x.LY = int16(binary.LittleEndian.Uint16(data[8:10]))
	x.RX = int16(binary.LittleEndian.Uint16(data[10:12]))
	x.RY = int16(binary.LittleEndian.Uint16(data[12:14]))
	return x, nil
}
