// Package streamext provides timing and lifecycle combinators for streams of elements.
// Streams are lazy, possibly infinite sequences whose elements pass through channels,
// advanced one step at a time as the downstream consumes them.
//
// Streams are constructed by creating an initial ProducerFunc, which can produce
// elements from slices, channels, or any arbitrary source.
//
// Combinators wrap an existing producer and return a new producer with augmented
// behavior: bounding how long to wait for the next element (Timeout), collapsing
// bursts into their most recent element (Debounce), limiting the element rate
// (Throttle), dropping adjacent duplicates (DistinctUntilChanged), or observing
// termination (OnComplete).
//
// Stream operations will receive a context.CancelCauseFunc. Calling the cancel function
// will cancel the entire stream, thus short-circuiting processing elements. Producer
// implementations must be prepared to be canceled at any time by checking the provided
// context.Context.
//
// A producer signals completion by closing its channel. Combinators never receive
// from an inner channel again after observing it closed, and they spawn no threads
// of their own: each wrapper runs a single goroutine that blocks in a select on the
// inner channel, a timer, and the stream's context.
package streamext
