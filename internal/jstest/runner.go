package jstest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"joyrelay/event"
)

// Stream spawns `jstest --event <device>` and emits every parsed event on the
// returned channel. The channel closes when the process exits or the context
// is canceled; a process that dies (device unplugged) is not restarted, the
// caller decides.
func Stream(ctx context.Context, device string, logger *slog.Logger) (<-chan event.Event, error) {
	cmd := exec.CommandContext(ctx, "jstest", "--event", device)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("pipe jstest stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start jstest: %w", err)
	}

	ch := make(chan event.Event, 64)
	go func() {
		defer close(ch)
		scanLines(ctx, stdout, ch, logger)
		if err := cmd.Wait(); err != nil && ctx.Err() == nil {
			logger.Warn("jstest exited", "error", err)
		}
	}()
	return ch, nil
}

// ScanLines reads producer lines from r (typically stdin) and emits parsed
// events until EOF or cancellation.
func ScanLines(ctx context.Context, r io.Reader, logger *slog.Logger) <-chan event.Event {
	ch := make(chan event.Event, 64)
	go func() {
		defer close(ch)
		scanLines(ctx, r, ch, logger)
	}()
	return ch
}

func scanLines(ctx context.Context, r io.Reader, ch chan<- event.Event, logger *slog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		ev, ok := ParseLine(line)
		if !ok {
			if line != "" {
				logger.Debug("skipping unrecognized line", "line", line)
			}
			continue
		}
		select {
		case ch <- ev:
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		logger.Warn("reading producer lines failed", "error", err)
	}
}
