//go:build linux

// Package uinput exposes mapped controller state as a kernel-level virtual
// gamepad through /dev/uinput.
package uinput

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"joyrelay/pad"
)

const devicePath = "/dev/uinput"

// uinput ioctl requests, from linux/uinput.h.
const (
	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502
	uiSetEvBit   = 0x40045564
	uiSetKeyBit  = 0x40045565
	uiSetAbsBit  = 0x40045567
)

// Event types and codes, from linux/input-event-codes.h. The axis layout
// matches the kernel xpad driver: sticks on X/Y and RX/RY, triggers on Z/RZ.
const (
	evSyn = 0x00
	evKey = 0x01
	evAbs = 0x03

	synReport = 0

	absX  = 0x00
	absY  = 0x01
	absZ  = 0x02
	absRX = 0x03
	absRY = 0x04
	absRZ = 0x05

	btnA      = 0x130
	btnB      = 0x131
	btnX      = 0x133
	btnY      = 0x134
	btnTL     = 0x136
	btnTR     = 0x137
	btnSelect = 0x13a
	btnStart  = 0x13b
	btnMode   = 0x13c
	btnThumbL = 0x13d
	btnThumbR = 0x13e

	btnDPadUp    = 0x220
	btnDPadDown  = 0x221
	btnDPadLeft  = 0x222
	btnDPadRight = 0x223
)

var keyCode = map[pad.Button]uint16{
	pad.ButtonA:             btnA,
	pad.ButtonB:             btnB,
	pad.ButtonX:             btnX,
	pad.ButtonY:             btnY,
	pad.ButtonLeftShoulder:  btnTL,
	pad.ButtonRightShoulder: btnTR,
	pad.ButtonBack:          btnSelect,
	pad.ButtonStart:         btnStart,
	pad.ButtonGuide:         btnMode,
	pad.ButtonLeftThumb:     btnThumbL,
	pad.ButtonRightThumb:    btnThumbR,
	pad.ButtonDPadUp:        btnDPadUp,
	pad.ButtonDPadDown:      btnDPadDown,
	pad.ButtonDPadLeft:      btnDPadLeft,
	pad.ButtonDPadRight:     btnDPadRight,
}

const (
	maxNameSize = 80
	absSize     = 64
)

// inputID mirrors struct input_id.
type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// userDev mirrors struct uinput_user_dev.
type userDev struct {
	Name       [maxNameSize]byte
	ID         inputID
	EffectsMax uint32
	Absmax     [absSize]int32
	Absmin     [absSize]int32
	Absfuzz    [absSize]int32
	Absflat    [absSize]int32
}

// inputEvent mirrors struct input_event. Time is left zero; the kernel
// timestamps uinput writes itself.
type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// Device is a virtual gamepad. Setter calls queue input events; Commit
// flushes them followed by a SYN_REPORT.
type Device struct {
	f       *os.File
	pending []inputEvent
}

// New creates the virtual gamepad device node. The caller must Close it to
// remove the device again.
func New(name string) (*Device, error) {
	f, err := os.OpenFile(devicePath, os.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", devicePath, err)
	}

	d := &Device{f: f}
	if err := d.setup(name); err != nil {
		_ = f.Close()
		return nil, err
	}
	return d, nil
}

func (d *Device) setup(name string) error {
	fd := d.f.Fd()
	for _, ev := range []int{evKey, evAbs, evSyn} {
		if err := ioctl(fd, uiSetEvBit, uintptr(ev)); err != nil {
			return fmt.Errorf("enable event type %#x: %w", ev, err)
		}
	}
	for _, code := range keyCode {
		if err := ioctl(fd, uiSetKeyBit, uintptr(code)); err != nil {
			return fmt.Errorf("enable key %#x: %w", code, err)
		}
	}
	for _, code := range []int{absX, absY, absRX, absRY, absZ, absRZ} {
		if err := ioctl(fd, uiSetAbsBit, uintptr(code)); err != nil {
			return fmt.Errorf("enable abs %#x: %w", code, err)
		}
	}

	var dev userDev
	copy(dev.Name[:maxNameSize-1], name)
	dev.ID = inputID{Bustype: unix.BUS_USB, Vendor: 0x045e, Product: 0x028e, Version: 0x0114}
	for _, code := range []int{absX, absY, absRX, absRY} {
		dev.Absmin[code] = -pad.AxisMax
		dev.Absmax[code] = pad.AxisMax
	}
	for _, code := range []int{absZ, absRZ} {
		dev.Absmin[code] = 0
		dev.Absmax[code] = 255
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &dev); err != nil {
		return err
	}
	if _, err := d.f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write device descriptor: %w", err)
	}
	if err := ioctl(fd, uiDevCreate, 0); err != nil {
		return fmt.Errorf("create device: %w", err)
	}
	return nil
}

func (d *Device) queue(typ, code uint16, value int32) {
	d.pending = append(d.pending, inputEvent{Type: typ, Code: code, Value: value})
}

func (d *Device) SetLeftStick(x, y int16) {
	d.queue(evAbs, absX, int32(x))
	d.queue(evAbs, absY, int32(y))
}

func (d *Device) SetRightStick(x, y int16) {
	d.queue(evAbs, absRX, int32(x))
	d.queue(evAbs, absRY, int32(y))
}

func (d *Device) SetLeftTrigger(level uint8)  { d.queue(evAbs, absZ, int32(level)) }
func (d *Device) SetRightTrigger(level uint8) { d.queue(evAbs, absRZ, int32(level)) }

func (d *Device) PressButton(b pad.Button) {
	if code, ok := keyCode[b]; ok {
		d.queue(evKey, code, 1)
	}
}

func (d *Device) ReleaseButton(b pad.Button) {
	if code, ok := keyCode[b]; ok {
		d.queue(evKey, code, 0)
	}
}

// Commit flushes the queued events plus a SYN_REPORT in one write.
func (d *Device) Commit() error {
	d.queue(evSyn, synReport, 0)
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, d.pending); err != nil {
		return err
	}
	d.pending = d.pending[:0]
	if _, err := d.f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write input events: %w", err)
	}
	return nil
}

// ResetToNeutral queues releases for every button and centers all axes.
func (d *Device) ResetToNeutral() error {
	for _, code := range keyCode {
		d.queue(evKey, code, 0)
	}
	for _, code := range []int{absX, absY, absRX, absRY, absZ, absRZ} {
		d.queue(evAbs, uint16(code), 0)
	}
	return nil
}

// Close destroys the virtual device.
func (d *Device) Close() error {
	err := ioctl(d.f.Fd(), uiDevDestroy, 0)
	if cerr := d.f.Close(); err == nil {
		err = cerr
	}
	return err
}

func ioctl(fd uintptr, req uint, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(req), arg)
	if errno != 0 {
		return errno
	}
	return nil
}

var _ pad.Sink = (*Device)(nil)
