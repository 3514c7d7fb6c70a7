package keychord

import (
	"time"

	"github.com/nickwells/verbose.mod/verbose"
)

// Injector sends synthetic key events to the active application
type Injector interface {
	// Press presses the chord's modifier, if any, and then its key
	Press(c Chord) error
	// Release releases the chord's key and then its modifier, if any
	Release(c Chord) error
}

// NopInjector sends nothing
type NopInjector struct{}

// Press does nothing
func (NopInjector) Press(Chord) error { return nil }

// Release does nothing
func (NopInjector) Release(Chord) error { return nil }

// Trigger sends a fixed sequence of key chords
type Trigger struct {
	Injector Injector
	Steps    []Step
	Sleep    func(time.Duration)
}

// NewTrigger returns a Trigger which will paste and press Enter through the
// given Injector
func NewTrigger(inj Injector, mod Modifier) Trigger {
	return Trigger{
		Injector: inj,
		Steps:    PasteEnter(mod),
		Sleep:    time.Sleep,
	}
}

// Fire sends the steps once. It is a best-effort operation: any failure to
// send an event is not returned, it is only shown in verbose mode, and the
// remaining steps are still sent.
func (t Trigger) Fire() {
	sleep := t.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	for _, s := range t.Steps {
		if err := t.Injector.Press(s.Chord); err != nil {
			verbose.Println("couldn't press ", s.Chord.String(),
				": ", err.Error())
		}

		sleep(s.Hold)

		if err := t.Injector.Release(s.Chord); err != nil {
			verbose.Println("couldn't release ", s.Chord.String(),
				": ", err.Error())
		}

		if s.After > 0 {
			sleep(s.After)
		}
	}
}
