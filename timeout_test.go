package streamext

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestTimeout(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	elemCh := make(chan int)

	go func() {
		defer close(elemCh)

		elemCh <- 1

		time.Sleep(150 * time.Millisecond)

		elemCh <- 2
	}()

	outCh := Timeout(ProduceChannel(elemCh), 30*time.Millisecond)(ctx, cancel)

	first := <-outCh
	is.Equal(first, Tick[int]{Elem: 1})

	second := <-outCh
	is.True(second.Expired)

	expired := 0

	last := Tick[int]{}
	for last = range outCh {
		if !last.Expired {
			break
		}

		expired++
	}

	is.Equal(last, Tick[int]{Elem: 2})
	is.True(expired >= 1)

	_, open := <-outCh
	is.True(!open)
}

func TestTimeout_NeverExpires(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ticks := Timeout(Produce([]int{1, 2, 3, 4, 5}), time.Minute)

	result, err := Reduce(ctx, ticks, nil, CollectSlice[Tick[int]]())

	is.NoErr(err)
	is.Equal(result, []Tick[int]{{Elem: 1}, {Elem: 2}, {Elem: 3}, {Elem: 4}, {Elem: 5}})
}

func TestTimeout_Disabled(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ticks := Timeout(Produce([]int{1, 2, 3}), 0)

	result, err := Reduce(ctx, ticks, nil, CollectSlice[Tick[int]]())

	is.NoErr(err)
	is.Equal(result, []Tick[int]{{Elem: 1}, {Elem: 2}, {Elem: 3}})
}

func TestTimeout_Cancel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ticks := Timeout(Produce([]int{1, 2, 3, 4, 5}), time.Minute)

	err := Each(ctx, ticks, func(_ context.Context, cancel context.CancelCauseFunc, elem Tick[int], index uint64) {
		is.True(elem.Elem <= 2)

		if elem.Elem == 2 {
			cancel(nil)
		}
	})

	is.True(errors.Is(err, context.Canceled))
}
