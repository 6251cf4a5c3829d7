// Package clock drives a simulation at a fixed tick rate for hosts that do
// not bring their own frame loop.
package clock

import (
	"context"
	"time"
)

// DefaultRate is the tick rate in Hz used when none is configured.
const DefaultRate = 60

// Ticker advances a simulation by one step.
type Ticker interface {
	Tick()
}

// Interval returns the tick period for rate Hz. Non-positive rates fall
// back to DefaultRate.
func Interval(rate int) time.Duration {
	if rate <= 0 {
		rate = DefaultRate
	}
	return time.Second / time.Duration(rate)
}

// Run ticks t at rate Hz until ctx is done or frame fails.
//
// Everything happens on the calling goroutine: events are run in arrival
// order between ticks, and frame is called right after each Tick. A closed
// events channel is ignored from then on. Run returns ctx.Err() on
// cancellation, or the first error returned by frame.
func Run(ctx context.Context, rate int, t Ticker, events <-chan func(), frame func() error) error {
	ticker := time.NewTicker(Interval(rate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if ev != nil {
				ev()
			}
		case <-ticker.C:
			t.Tick()
			if frame == nil {
				continue
			}
			if err := frame(); err != nil {
				return err
			}
		}
	}
}

// TickerFunc adapts a plain function to Ticker.
type TickerFunc func()

func (f TickerFunc) Tick() { f() }
