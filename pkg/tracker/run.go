// pkg/tracker/run.go

package tracker

import (
	"context"
	"time"
)

// Presenter displays the progress of a run.
type Presenter interface {
	Start()
	Update(tick Tick)
	Final(elapsed time.Duration)
}

// Run ticks every UpdateInterval until ctx is cancelled, then shows the
// elapsed time one last time and returns it. The interval slept when the
// cancellation arrives is not counted.
func (t *Tracker) Run(ctx context.Context, clock Clock, p Presenter) time.Duration {
	p.Start()
	ticks, gaps := 0, 0
	for {
		if err := clock.Sleep(ctx, t.cfg.UpdateInterval); err != nil {
			logger.Debugf("stop after %d ticks (%d suspend gaps): %s", ticks, gaps, err)
			break
		}
		tick := t.Tick(clock.Now())
		ticks++
		if tick.Gap {
			gaps++
		}
		p.Update(tick)
	}
	p.Final(t.elapsed)
	return t.elapsed
}
