package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
)

// Loop schedules repeated generation steps. It owns the running flag and the
// minimum delay; the engine itself never waits.
type Loop struct {
	sim     *life.Life
	pace    *core.FixedStep
	running bool
}

// NewLoop returns a paused loop driving sim with the given minimum delay.
func NewLoop(sim *life.Life, delay time.Duration) *Loop {
	return &Loop{sim: sim, pace: core.NewFixedStep(delay)}
}

// Running reports whether the loop is playing.
func (l *Loop) Running() bool { return l.running }

// Play starts the loop. The first Tick afterwards steps immediately.
func (l *Loop) Play() {
	if l.running {
		return
	}
	l.running = true
	l.pace.Rearm()
	logrus.Infof("loop: playing at generation %d", l.sim.Generation())
}

// Pause stops the loop.
func (l *Loop) Pause() {
	if !l.running {
		return
	}
	l.running = false
	logrus.Infof("loop: paused at generation %d", l.sim.Generation())
}

// TogglePlay flips between playing and paused and returns the new state.
func (l *Loop) TogglePlay() bool {
	if l.running {
		l.Pause()
	} else {
		l.Play()
	}
	return l.running
}

// Delay returns the minimum time between generations.
func (l *Loop) Delay() time.Duration { return l.pace.Delay() }

// SetDelay changes the minimum time between generations. Non-positive values
// are ignored and reported as false.
func (l *Loop) SetDelay(d time.Duration) bool { return l.pace.SetDelay(d) }

// Tick advances one generation if the loop is playing and the delay has
// elapsed. ok is false when no step was taken.
func (l *Loop) Tick() (delta life.Delta, ok bool) {
	if !l.running || !l.pace.ShouldStep() {
		return life.Delta{}, false
	}
	return l.stepOnce(), true
}

// StepOnce advances exactly one generation regardless of the running flag.
func (l *Loop) StepOnce() life.Delta { return l.stepOnce() }

func (l *Loop) stepOnce() life.Delta {
	delta := l.sim.Advance()
	logrus.Debugf("loop: generation %d born=%d died=%d", l.sim.Generation(), len(delta.Born), len(delta.Died))
	return delta
}

// Run plays generations generations, waiting the loop delay between them, and
// calls onStep after each one. A non-positive count runs until ctx is done.
// Run stops early once a generation changes nothing.
func (l *Loop) Run(ctx context.Context, generations int, onStep func(life.Delta)) error {
	l.Play()
	defer l.Pause()

	timer := time.NewTimer(0)
	defer timer.Stop()
	for done := 0; generations <= 0 || done < generations; done++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		delta := l.stepOnce()
		if onStep != nil {
			onStep(delta)
		}
		if delta.Empty() {
			logrus.Infof("loop: stable after %d generations", l.sim.Generation())
			return nil
		}
		timer.Reset(l.pace.Delay())
	}
	return nil
}
