package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"joyrelay/event"
	"joyrelay/internal/joydev"
	"joyrelay/internal/jstest"
	"joyrelay/internal/log"
	"joyrelay/transport"
)

// Send reads joystick events from a producer and relays each one as a UDP
// datagram. Send failures are logged and skipped; the producer keeps running.
type Send struct {
	Host    string `help:"Target host." default:"localhost" env:"JOYRELAY_HOST"`
	Port    int    `help:"Target UDP port." default:"5005" env:"JOYRELAY_PORT"`
	Device  string `help:"Joystick device." default:"/dev/input/js0" env:"JOYRELAY_DEVICE"`
	Source  string `help:"Event source: spawn jstest, read the device natively, or parse stdin." enum:"jstest,native,stdin" default:"jstest"`
	Verbose bool   `help:"Log every sent event."`
}

// Run is called by kong when the send command is executed.
func (s *Send) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sender, err := transport.Dial(s.Host, s.Port, rawLogger)
	if err != nil {
		return fmt.Errorf("open sender: %w", err)
	}
	defer sender.Close()

	events, err := s.openSource(ctx, logger)
	if err != nil {
		return err
	}

	logger.Info("relaying joystick events",
		"source", s.Source, "device", s.Device, "to", sender.RemoteAddr().String())

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				logger.Info("event source ended")
				return nil
			}
			if err := sender.Send(ev); err != nil {
				logger.Warn("send failed", "error", err)
				continue
			}
			if s.Verbose {
				logger.Info("sent event",
					"kind", ev.Kind.String(), "time", ev.Time,
					"number", ev.Number, "value", ev.Value)
			}
		}
	}
}

func (s *Send) openSource(ctx context.Context, logger *slog.Logger) (<-chan event.Event, error) {
	switch s.Source {
	case "jstest":
		return jstest.Stream(ctx, s.Device, logger)
	case "native":
		dev, err := joydev.Open(s.Device)
		if err != nil {
			return nil, fmt.Errorf("open joystick: %w", err)
		}
		logger.Info("opened joystick",
			"name", dev.Name(), "axes", dev.Axes(), "buttons", dev.Buttons())
		return dev.Stream(ctx, logger), nil
	case "stdin":
		return jstest.ScanLines(ctx, os.Stdin, logger), nil
	default:
		return nil, fmt.Errorf("unknown source %q", s.Source)
	}
}
