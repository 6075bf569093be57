package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"joyrelay/device/uinput"
	"joyrelay/device/xbox360"
	"joyrelay/internal/log"
	"joyrelay/pad"
	"joyrelay/transport"
)

// Receive binds a UDP socket, reconstructs controller state from the incoming
// event stream and pushes it to a virtual gamepad sink. No single bad
// datagram ever stops the loop; only cancellation or a bind failure does.
type Receive struct {
	Host        string        `help:"Host to bind to." default:"0.0.0.0" env:"JOYRELAY_BIND"`
	Port        int           `help:"UDP port to listen on." default:"5005" env:"JOYRELAY_PORT"`
	Sink        string        `help:"Where mapped state goes." enum:"console,uinput,x360-report" default:"console"`
	ReportOut   string        `help:"Destination file for x360-report sink (default stdout)." type:"path"`
	DeviceName  string        `help:"Name of the created uinput device." default:"joyrelay gamepad"`
	Quiet       bool          `help:"Suppress per-event console output."`
	PollTimeout time.Duration `help:"Receive poll timeout; bounds how long cancellation can be ignored." default:"1s"`
}

// Run is called by kong when the receive command is executed.
func (r *Receive) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink, closeSink, err := r.openSink(logger)
	if err != nil {
		return err
	}
	defer closeSink()

	recv, err := transport.Listen(r.Host, r.Port, rawLogger)
	if err != nil {
		return fmt.Errorf("bind receiver: %w", err)
	}
	defer recv.Close()

	sess := pad.NewSession(sink)
	// The device must never stay in a non-neutral state after this loop ends,
	// whatever the exit path.
	defer func() {
		if err := sess.Reset(); err != nil {
			logger.Error("failed to reset controller state", "error", err)
		}
	}()

	interactive := !r.Quiet && term.IsTerminal(int(os.Stdout.Fd()))
	logger.Info("listening for joystick events", "addr", recv.LocalAddr().String(), "sink", r.Sink)

	var invalid uint64
	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping", "invalid_payloads", invalid)
			return nil
		default:
		}

		addr, ev, err := recv.Receive(r.PollTimeout)
		if err != nil {
			if errors.Is(err, transport.ErrTimeout) {
				continue
			}
			var ipe *transport.InvalidPayloadError
			if errors.As(err, &ipe) {
				invalid++
				logger.Warn("invalid payload",
					"from", ipe.Addr.String(), "bytes", len(ipe.Raw), "error", ipe.Err)
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			logger.Error("receive failed", "error", err)
			continue
		}

		if err := sess.Apply(ev); err != nil {
			// One missed commit; internal state stays consistent and the next
			// event pushes it again.
			logger.Error("commit failed", "error", err)
		}
		if interactive {
			fmt.Printf("[%s] Time: %10d | %-6s | Number: %2d | Value: %6d\n",
				addr, ev.Time, ev.Kind, ev.Number, ev.Value)
		}
	}
}

func (r *Receive) openSink(logger *slog.Logger) (pad.Sink, func(), error) {
	switch r.Sink {
	case "uinput":
		dev, err := uinput.New(r.DeviceName)
		if err != nil {
			return nil, nil, fmt.Errorf("create uinput device: %w", err)
		}
		logger.Info("created virtual gamepad", "name", r.DeviceName)
		return dev, func() { _ = dev.Close() }, nil
	case "x360-report":
		var w io.Writer = os.Stdout
		cleanup := func() {}
		if r.ReportOut != "" {
			f, err := os.OpenFile(r.ReportOut, os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return nil, nil, fmt.Errorf("open report output: %w", err)
			}
			w = f
			cleanup = func() { _ = f.Close() }
		}
		return xbox360.NewSink(w), cleanup, nil
	case "console":
		return &consoleSink{logger: logger}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown sink %q", r.Sink)
	}
}

// consoleSink logs state deltas instead of driving a device. It is the
// default sink, useful for checking connectivity before creating a device.
type consoleSink struct {
	logger *slog.Logger
}

func (c *consoleSink) SetLeftStick(x, y int16) {
	c.logger.Debug("left stick", "x", x, "y", y)
}

func (c *consoleSink) SetRightStick(x, y int16) {
	c.logger.Debug("right stick", "x", x, "y", y)
}

func (c *consoleSink) SetLeftTrigger(level uint8) {
	c.logger.Debug("left trigger", "level", level)
}

func (c *consoleSink) SetRightTrigger(level uint8) {
	c.logger.Debug("right trigger", "level", level)
}

func (c *consoleSink) PressButton(b pad.Button) {
	c.logger.Debug("button pressed", "button", b.String())
}

func (c *consoleSink) ReleaseButton(b pad.Button) {
	c.logger.Debug("button released", "button", b.String())
}

func (c *consoleSink) Commit() error { return nil }

func (c *consoleSink) ResetToNeutral() error {
	c.logger.Debug("controller reset to neutral")
	return nil
}
