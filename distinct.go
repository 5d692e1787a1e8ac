package streamext

import "context"

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// DistinctUntilChanged returns a producer that produces the same elements as prod,
// in order, dropping elements that equal their immediate predecessor.
func DistinctUntilChanged[T comparable](prod ProducerFunc[T]) ProducerFunc[T] {
	return DistinctUntilChangedFunc(prod, func(elem T) T {
		return elem
	})
}

// DistinctUntilChangedFunc returns a producer that produces the same elements as prod,
// in order, dropping elements whose memo value equals that of their immediate
// predecessor. Each element is mapped to its memo value exactly once.
func DistinctUntilChangedFunc[T any, M comparable](prod ProducerFunc[T], memo Function[T, M]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			var lastMemo M
			first := true

			for elem := range ch {
				elemMemo := memo(elem)

				if !first && elemMemo == lastMemo {
					continue
				}

				first = false
				lastMemo = elemMemo

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
