package tieredwait

import (
	"time"

	"github.com/nickwells/tempus.mod/tempus"
)

const (
	// DfltCoarseBound is the remaining time above which the Waiter sleeps
	// coarsely
	DfltCoarseBound = time.Duration(tempus.SecondsPerMinute) * time.Second
	// DfltMediumBound is the remaining time above which the Waiter sleeps
	// for the medium interval. At or below this it polls finely.
	DfltMediumBound = 10 * time.Second

	// DfltCoarseSleep is the longest single sleep in the coarse tier
	DfltCoarseSleep = DfltCoarseBound
	// DfltMediumSleep is the longest single sleep in the medium tier
	DfltMediumSleep = DfltMediumBound
	// DfltFinePoll is the interval between clock checks in the fine tier
	DfltFinePoll    = 100 * time.Microsecond

	// DfltGuard is the least time a coarse or medium sleep may leave before
	// the target
	DfltGuard = time.Second
)

// Waiter blocks until a target time arrives. It sleeps for long intervals
// while the target is far away and polls the clock at short intervals as
// the target approaches.
type Waiter struct {
	Clock Clock

	CoarseBound time.Duration
	MediumBound time.Duration

	CoarseSleep time.Duration
	MediumSleep time.Duration
	FinePoll    time.Duration
	Guard       time.Duration

	// Observe, if not nil, is called each time the Waiter evaluates the
	// remaining time; it is given the tier chosen and the time remaining.
	// It is called with Fine once, on entering the fine tier, and with
	// Fired exactly once.
	Observe func(t Tier, remaining time.Duration)
}

// New returns a Waiter using the given clock and the default intervals. If
// the clock is nil the SystemClock is used.
func New(c Clock) Waiter {
	if c == nil {
		c = SystemClock{}
	}

	return Waiter{
		Clock:       c,
		CoarseBound: DfltCoarseBound,
		MediumBound: DfltMediumBound,
		CoarseSleep: DfltCoarseSleep,
		MediumSleep: DfltMediumSleep,
		FinePoll:    DfltFinePoll,
		Guard:       DfltGuard,
	}
}

// remaining returns the time left until the target
func (w Waiter) remaining(targetMS int64) time.Duration {
	return time.Duration(targetMS-w.Clock.Now().UnixMilli()) * time.Millisecond
}

// tierFor returns the tier appropriate to the remaining time
func (w Waiter) tierFor(remaining time.Duration) Tier {
	switch {
	case remaining <= 0:
		return Fired
	case remaining > w.CoarseBound:
		return Coarse
	case remaining > w.MediumBound:
		return Medium
	}

	return Fine
}

// observe calls the Observe func if there is one
func (w Waiter) observe(t Tier, remaining time.Duration) {
	if w.Observe != nil {
		w.Observe(t, remaining)
	}
}

// sleepFor returns how long to sleep in the coarse or medium tier. The
// sleep is cut short so that at least the guard interval is left.
func (w Waiter) sleepFor(tierSleep, remaining time.Duration) time.Duration {
	d := min(tierSleep, remaining-w.Guard)
	if d <= 0 {
		d = min(tierSleep, remaining)
	}

	return d
}

// Wait returns once the clock reaches the target time, given as
// milliseconds since the Unix epoch. It returns immediately if the target
// has already passed. The tier never moves back towards Coarse, even if
// the clock is stepped backwards.
func (w Waiter) Wait(targetMS int64) {
	tier := Coarse

	for {
		remaining := w.remaining(targetMS)

		tier = max(tier, w.tierFor(remaining))

		switch tier {
		case Coarse:
			w.observe(tier, remaining)
			w.Clock.Sleep(w.sleepFor(w.CoarseSleep, remaining))
		case Medium:
			w.observe(tier, remaining)
			w.Clock.Sleep(w.sleepFor(w.MediumSleep, remaining))
		case Fine:
			w.observe(tier, remaining)
			w.poll(targetMS)

			remaining = w.remaining(targetMS)

			fallthrough
		case Fired:
			w.observe(Fired, remaining)
			return
		}
	}
}

// poll samples the clock every FinePoll interval until the target is
// reached
func (w Waiter) poll(targetMS int64) {
	for w.Clock.Now().UnixMilli() < targetMS {
		w.Clock.Sleep(w.FinePoll)
	}
}
