package playback

import (
	"context"
	"time"

	"github.com/himanshuyadav71/schedulicious-process-flow/internal/schedulers"
)

// Player advances a cursor across a schedule at a fixed pace.
type Player struct {
	// Interval is the wall-clock time spent on each simulated time unit.
	Interval time.Duration
}

// Play calls visit once per time unit, in order, waiting Interval between
// calls. The first step is delivered immediately. It returns ctx.Err() if
// the context ends before the last step.
func (p Player) Play(ctx context.Context, res schedulers.Result, visit func(ExecutionStep)) error {
	steps := Steps(res)
	if len(steps) == 0 {
		return nil
	}

	interval := p.Interval
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i, step := range steps {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		visit(step)
	}
	return nil
}
