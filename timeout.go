package streamext

import (
	"context"
	"time"
)

// Tick is the element type of a stream bounded by Timeout: either an element of the
// inner stream, or a signal that the wait for the next element expired.
type Tick[T any] struct {
	// Elem is the inner stream's element. It is the zero value if Expired is true.
	Elem T

	// Expired is true if no element arrived within the configured maximum wait.
	Expired bool
}

// Timeout returns a producer that bounds each wait for the next element of prod by max.
// If no element arrives in time, it produces a Tick with Expired set and keeps waiting,
// so an expiry does not terminate the stream. The new producer completes when prod
// completes.
//
// A max of zero or less disables the timer entirely: the new producer then yields
// exactly the elements of prod, wrapped in Ticks.
func Timeout[T any](prod ProducerFunc[T], max time.Duration) ProducerFunc[Tick[T]] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan Tick[T] {
		ch := prod(ctx, cancel)

		outCh := make(chan Tick[T])

		go func() {
			defer close(outCh)

			if max <= 0 {
				for elem := range ch {
					select {
					case outCh <- Tick[T]{Elem: elem}:

					case <-ctx.Done():
						return
					}
				}

				return
			}

			timer := time.NewTimer(max)
			defer timer.Stop()

			for {
				select {
				case elem, ok := <-ch:
					if !ok {
						return
					}

					select {
					case outCh <- Tick[T]{Elem: elem}:

					case <-ctx.Done():
						return
					}

					resetTimer(timer, max)

				case <-timer.C:
					select {
					case outCh <- Tick[T]{Expired: true}:

					case <-ctx.Done():
						return
					}

					// The timer has fired and is drained, a plain Reset is safe.
					timer.Reset(max)

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}
