package streamext

import "time"

// newStoppedTimer returns a timer that is not running and whose channel is empty.
func newStoppedTimer() *time.Timer {
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}

	return timer
}

// resetTimer restarts timer with duration d. The timer may be running, stopped, or
// already fired with its channel not yet drained.
func resetTimer(timer *time.Timer, d time.Duration) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}

	timer.Reset(d)
}
