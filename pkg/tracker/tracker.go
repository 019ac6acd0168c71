// pkg/tracker/tracker.go

// Package tracker accumulates the elapsed time of a running timer.
//
// # Suspend detection
//
// A process gets no notification when it is stopped by job control and later
// continued. The only trace of a suspension is a gap between two ticks that
// is much longer than the update interval. A tick whose interval exceeds
// UpdateInterval + SuspendMargin is therefore classified as a suspend gap and
// not counted as elapsed time.
//
// This is a heuristic. A margin that is too small counts scheduling jitter
// as a suspension and loses time; a margin that is too large lets short
// suspensions through.
package tracker

import (
	"time"

	"termkit/pkg/utils"

	"github.com/pkg/errors"
)

var logger = utils.GetLogger("termkit")

var ErrNegativeMargin = errors.New("suspend margin must not be negative")

// DefaultUpdateInterval is the sleep between two ticks.
const DefaultUpdateInterval = 10 * time.Millisecond

// Config for a Tracker.
type Config struct {
	UpdateInterval time.Duration
	// SuspendMargin defaults to UpdateInterval when nil.
	SuspendMargin *time.Duration
}

// Threshold returns the longest interval still counted as a normal tick.
func (c Config) Threshold() time.Duration {
	margin := c.UpdateInterval
	if c.SuspendMargin != nil {
		margin = *c.SuspendMargin
	}
	return c.UpdateInterval + margin
}

// Tick is the outcome of one accounting step.
type Tick struct {
	Interval time.Duration
	Elapsed  time.Duration
	// Gap is set when Interval was classified as a suspend gap and dropped.
	Gap bool
}

// Tracker holds the elapsed time and the last checkpoint.
type Tracker struct {
	cfg        Config
	threshold  time.Duration
	elapsed    time.Duration
	checkpoint time.Time
}

// New creates a Tracker which starts counting from initial at start.
func New(cfg Config, initial time.Duration, start time.Time) (*Tracker, error) {
	if cfg.SuspendMargin != nil && *cfg.SuspendMargin < 0 {
		return nil, errors.Wrapf(ErrNegativeMargin, "got %s", *cfg.SuspendMargin)
	}
	if cfg.UpdateInterval <= 0 {
		logger.Warnf("update interval %s is not positive, the timer will spin", cfg.UpdateInterval)
	}
	return &Tracker{
		cfg:        cfg,
		threshold:  cfg.Threshold(),
		elapsed:    initial,
		checkpoint: start,
	}, nil
}

// Tick accounts the interval since the previous checkpoint.
func (t *Tracker) Tick(now time.Time) Tick {
	interval := now.Sub(t.checkpoint)
	t.checkpoint = now

	tick := Tick{Interval: interval}
	switch {
	case interval > t.threshold:
		tick.Gap = true
		logger.Debugf("likely suspended for %s, not counted", interval)
	case interval < 0:
		logger.Debugf("clock went back by %s", -interval)
	default:
		t.elapsed += interval
	}
	tick.Elapsed = t.elapsed
	return tick
}

// Elapsed returns the accumulated time.
func (t *Tracker) Elapsed() time.Duration {
	return t.elapsed
}

// Threshold returns the suspend threshold in use.
func (t *Tracker) Threshold() time.Duration {
	return t.threshold
}
