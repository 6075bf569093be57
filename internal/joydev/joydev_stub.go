//go:build !linux

// Package joydev reads the Linux joystick interface (/dev/input/jsN)
// directly, without going through jstest.
package joydev

import (
	"context"
	"errors"
	"log/slog"

	"joyrelay/event"
)

// ErrUnsupported reports that the joystick interface only exists on Linux.
var ErrUnsupported = errors.New("joydev: only supported on linux")

// Device is an open joystick device node. It is unavailable on this platform.
type Device struct{}

func Open(path string) (*Device, error) { return nil, ErrUnsupported }

func (d *Device) Name() string { return "" }
func (d *Device) Axes() int    { return 0 }
func (d *Device) Buttons() int { return 0 }
func (d *Device) Close() error { return nil }

func (d *Device) Stream(ctx context.Context, logger *slog.Logger) <-chan event.Event {
	ch := make(chan event.Event)
	close(ch)
	return ch
}
