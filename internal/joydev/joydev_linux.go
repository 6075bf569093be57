//go:build linux

// Package joydev reads the Linux joystick interface (/dev/input/jsN)
// directly, without going through jstest.
package joydev

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"joyrelay/event"
)

// Joystick ioctl requests, from linux/joystick.h.
const (
	jsiocgAxes    = 0x80016a11
	jsiocgButtons = 0x80016a12
	jsiocgName    = 0x80006a13 + (128 << 16)
)

// jsEvent mirrors struct js_event: 8 bytes, little-endian on every platform
// this interface exists on.
type jsEvent struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

// Device is an open joystick device node.
type Device struct {
	f       *os.File
	path    string
	name    string
	axes    uint8
	buttons uint8
}

// Open opens a joystick device and queries its identity.
func Open(path string) (*Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open joystick: %w", err)
	}
	d := &Device{f: f, path: path}

	var name [128]byte
	if err := ioctl(f.Fd(), jsiocgName, unsafe.Pointer(&name[0])); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("query device name: %w", err)
	}
	for i, b := range name {
		if b == 0 {
			d.name = string(name[:i])
			break
		}
	}
	if err := ioctl(f.Fd(), jsiocgAxes, unsafe.Pointer(&d.axes)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("query axis count: %w", err)
	}
	if err := ioctl(f.Fd(), jsiocgButtons, unsafe.Pointer(&d.buttons)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("query button count: %w", err)
	}
	return d, nil
}

// Name returns the device's reported name.
func (d *Device) Name() string { return d.name }

// Axes returns the number of axes the device reports.
func (d *Device) Axes() int { return int(d.axes) }

// Buttons returns the number of buttons the device reports.
func (d *Device) Buttons() int { return int(d.buttons) }

// Stream emits every joystick event on the returned channel, including the
// init-flagged snapshot the kernel sends on open. The channel closes on read
// failure or cancellation; cancellation closes the device file to unblock the
// pending read.
func (d *Device) Stream(ctx context.Context, logger *slog.Logger) <-chan event.Event {
	ch := make(chan event.Event, 64)

	go func() {
		<-ctx.Done()
		_ = d.f.Close()
	}()

	go func() {
		defer close(ch)
		for {
			var e jsEvent
			if err := binary.Read(d.f, binary.LittleEndian, &e); err != nil {
				if ctx.Err() == nil {
					logger.Warn("joystick read failed", "device", d.path, "error", err)
				}
				return
			}
			ev := event.Event{
				Kind:   event.Kind(e.Type),
				Time:   e.Time,
				Number: int(e.Number),
				Value:  int32(e.Value),
			}
			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// Close closes the device node.
func (d *Device) Close() error { return d.f.Close() }

func ioctl(fd uintptr, req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
