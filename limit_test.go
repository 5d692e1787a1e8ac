package streamext

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

func TestLimit(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	producerCancelCause := make(chan error, 1)

	ints := func(ctx context.Context, _ context.CancelCauseFunc) <-chan int {
		outCh := make(chan int)

		go func() {
			defer close(outCh)

			for i := 0; ; i++ {
				select {
				case outCh <- i:

				case <-ctx.Done():
					producerCancelCause <- context.Cause(ctx)
					return
				}
			}
		}()

		return outCh
	}

	result, err := Reduce(ctx, Limit(ints, 3), nil, CollectSlice[int]())

	is.NoErr(err)
	is.Equal(result, []int{0, 1, 2})
	is.Equal(<-producerCancelCause, ErrLimitReached)
}

func TestLimit_Zero(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Limit(Produce([]int{1, 2, 3}), 0)

	result, err := Reduce(ctx, ints, nil, CollectSlice[int]())

	is.NoErr(err)
	is.Equal(result, []int(nil))
}
