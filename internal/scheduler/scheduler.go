package scheduler

import (
	"context"
	"log/slog"
	"time"
)

type Task func(ctx context.Context) error

// Every runs task once right away and then on each tick until ctx is done.
// A non-positive interval disables the task.
func Every(ctx context.Context, interval time.Duration, name string, task Task) {
	if interval <= 0 {
		slog.Debug("scheduled task disabled", "task", name)
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	run := func() {
		start := time.Now()
		if err := task(ctx); err != nil && ctx.Err() == nil {
			slog.Warn("scheduled task failed", "task", name, "err", err)
			return
		}
		slog.Debug("scheduled task done", "task", name, "took", time.Since(start))
	}

	run()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}
