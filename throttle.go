package streamext

import (
	"context"
	"time"
)

// IntervalEdge controls whether a throttled stream produces the element that starts
// a new interval immediately or only after the interval has elapsed.
type IntervalEdge int

const (
	// LeadingEdge produces the element that starts an idle throttler immediately.
	LeadingEdge IntervalEdge = iota

	// TrailingEdge holds the element until a full period has elapsed.
	TrailingEdge
)

// ThrottleConfig configures Throttle.
type ThrottleConfig struct {
	// Period is the minimum interval between subsequent elements. It limits the
	// maximum frequency of the new producer. A period of zero or less disables
	// throttling entirely.
	Period time.Duration

	// Edge controls whether the element starting a new interval is produced
	// immediately or after the interval has elapsed.
	Edge IntervalEdge
}

// Throttle returns a producer that produces at most one element of prod per
// config.Period, always the most recent one; elements arriving faster replace the
// pending element. A period during which no element arrives returns the throttler
// to idle, so a later element starts a fresh interval. When prod completes, a
// pending element is produced at the end of the current interval, then the new
// producer completes.
func Throttle[T any](prod ProducerFunc[T], config ThrottleConfig) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			if config.Period <= 0 {
				for elem := range ch {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}

				return
			}

			timer := newStoppedTimer()
			defer timer.Stop()

			var pending T
			hasPending := false
			idle := true

			for {
				if ch == nil && !hasPending {
					return
				}

				select {
				case elem, ok := <-ch:
					if !ok {
						// A completed inner stream is never received from again.
						// A pending element is still flushed on the next tick.
						ch = nil
						continue
					}

					pending = elem
					hasPending = true

					if idle {
						idle = false

						if config.Edge == LeadingEdge {
							resetTimer(timer, 0)
						} else {
							resetTimer(timer, config.Period)
						}
					}

				case <-timer.C:
					if !hasPending {
						// Nothing arrived during the interval, stop ticking until
						// the next element starts a fresh interval.
						idle = true
						continue
					}

					select {
					case outCh <- pending:
						hasPending = false

					case <-ctx.Done():
						return
					}

					// The timer has fired and is drained, a plain Reset is safe.
					timer.Reset(config.Period)

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}
