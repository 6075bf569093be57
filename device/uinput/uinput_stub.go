//go:build !linux

// Package uinput exposes mapped controller state as a kernel-level virtual
// gamepad through /dev/uinput.
package uinput

import (
	"errors"

	"joyrelay/pad"
)

// ErrUnsupported reports that uinput devices only exist on Linux.
var ErrUnsupported = errors.New("uinput: only supported on linux")

// Device is a virtual gamepad. It is unavailable on this platform.
type Device struct{}

func New(name string) (*Device, error) { return nil, ErrUnsupported }

func (d *Device) SetLeftStick(x, y int16)     {}
func (d *Device) SetRightStick(x, y int16)    {}
func (d *Device) SetLeftTrigger(level uint8)  {}
func (d *Device) SetRightTrigger(level uint8) {}
func (d *Device) PressButton(b pad.Button)    {}
func (d *Device) ReleaseButton(b pad.Button)  {}
func (d *Device) Commit() error               { return ErrUnsupported }
func (d *Device) ResetToNeutral() error       { return ErrUnsupported }
func (d *Device) Close() error                { return nil }

var _ pad.Sink = (*Device)(nil)
