package streamext

import (
	"context"
	"time"
)

// Debounce returns a producer that produces the most recent element of prod once no
// newer element has arrived for delay. An element arriving during the quiet period
// replaces the pending element and restarts the delay. When prod completes, a still
// pending element is produced after its delay has elapsed, then the new producer
// completes.
func Debounce[T any](prod ProducerFunc[T], delay time.Duration) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			timer := newStoppedTimer()
			defer timer.Stop()

			var pending T
			hasPending := false

			for {
				if ch == nil && !hasPending {
					return
				}

				select {
				case elem, ok := <-ch:
					if !ok {
						// A completed inner stream is never received from again.
						// A pending element is still flushed once its delay elapses.
						ch = nil
						continue
					}

					pending = elem
					hasPending = true

					resetTimer(timer, delay)

				case <-timer.C:
					// The timer only fires while an element is pending.
					select {
					case outCh <- pending:
						hasPending = false

					case <-ctx.Done():
						return
					}

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}
