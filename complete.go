package streamext

import (
	"context"
	"sync/atomic"
)

// CompletionFunc observes the termination of a stream.
// The cause is the stream context's cancelation cause, or nil if the upstream
// producer was exhausted normally.
type CompletionFunc func(ctx context.Context, cause error)

// OnComplete returns a producer that produces the same elements as prod, in order,
// and calls complete exactly once when the stream terminates, whether by exhausting
// prod or by cancelation. complete is called before the new producer's channel is
// closed.
func OnComplete[T any](prod ProducerFunc[T], complete CompletionFunc) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			defer func() {
				complete(ctx, context.Cause(ctx))
			}()

			for elem := range ch {
				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// Fuse returns a producer that panics if it is invoked more than once.
// Invoking an exhausted producer is undefined behavior; wrapping a producer in Fuse
// turns that mistake into a loud failure.
func Fuse[T any](prod ProducerFunc[T]) ProducerFunc[T] {
	started := atomic.Bool{}

	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		if started.Swap(true) {
			panic("producer called multiple times")
		}

		return prod(ctx, cancel)
	}
}
