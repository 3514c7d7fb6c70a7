package tieredwait

import "time"

// Clock is the source of the current time and the means of sleeping
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock uses the time package
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep pauses the calling goroutine for at least the duration d
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
