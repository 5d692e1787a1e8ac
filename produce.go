package streamext

import (
	"context"
	"sync"
)

// ProducerFunc returns a channel of elements for a stream.
// The channel is closed once the stream is exhausted. An exhausted producer
// must not be invoked again, see Fuse.
type ProducerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T

// Produce returns a producer that produces the elements of the given slices, in order.
func Produce[T any](slices ...[]T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, slice := range slices {
				for _, elem := range slice {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}

// ProduceChannel returns a producer that produces the elements received through the given channels, in order.
func ProduceChannel[T any](channels ...<-chan T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, ch := range channels {
				for elem := range ch {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}

// Merge returns a producer that produces the elements produced by the given producers, in undefined order.
// The producers are consumed concurrently.
func Merge[T any](producers ...ProducerFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		grp := sync.WaitGroup{}
		grp.Add(len(producers))

		for _, prod := range producers {
			go func(ch <-chan T) {
				defer grp.Done()

				for elem := range ch {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}(prod(ctx, cancel))
		}

		go func() {
			defer close(outCh)

			grp.Wait()
		}()

		return outCh
	}
}
