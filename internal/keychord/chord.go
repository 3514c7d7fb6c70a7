package keychord

import (
	"fmt"
	"runtime"
	"time"

	"github.com/micmonay/keybd_event"
)

// Modifier is the modifier key held down while a Chord's key is pressed
type Modifier int

const (
	ModNone Modifier = iota
	ModCtrl
	ModSuper
)

// the names of the modifiers as given on the command line
const (
	ModNameNone  = "none"
	ModNameCtrl  = "ctrl"
	ModNameSuper = "super"
)

// String returns the name of the modifier
func (m Modifier) String() string {
	switch m {
	case ModNone:
		return ModNameNone
	case ModCtrl:
		return ModNameCtrl
	case ModSuper:
		return ModNameSuper
	}

	return fmt.Sprintf("Modifier(%d)", int(m))
}

// ParseModifier returns the Modifier with the given name
func ParseModifier(name string) (Modifier, error) {
	switch name {
	case ModNameNone:
		return ModNone, nil
	case ModNameCtrl:
		return ModCtrl, nil
	case ModNameSuper:
		return ModSuper, nil
	}

	return ModNone, fmt.Errorf("unknown modifier: %q", name)
}

// DfltModifier returns the modifier used for pasting on this platform: the
// Command key on macOS and the Control key elsewhere
func DfltModifier() Modifier {
	if runtime.GOOS == "darwin" {
		return ModSuper
	}

	return ModCtrl
}

// the platform key codes used by the sequences
const (
	KeyV     = keybd_event.VK_V
	KeyEnter = keybd_event.VK_ENTER
)

// Chord is a key pressed with an optional modifier
type Chord struct {
	Mod Modifier
	Key int
}

// String returns a description of the chord
func (c Chord) String() string {
	name := fmt.Sprintf("key(%d)", c.Key)

	switch c.Key {
	case KeyV:
		name = "V"
	case KeyEnter:
		name = "Enter"
	}

	if c.Mod == ModNone {
		return name
	}

	return c.Mod.String() + "+" + name
}

// Step is a single chord in a sequence. The chord is held for the Hold
// duration and then released; the next step starts after the After
// duration.
type Step struct {
	Chord Chord
	Hold  time.Duration
	After time.Duration
}

const (
	dfltHold       = 100 * time.Microsecond
	dfltPasteAfter = 1200 * time.Microsecond
)

// PasteEnter returns the steps to paste (the modifier plus V) and then
// press Enter
func PasteEnter(mod Modifier) []Step {
	return []Step{
		{
			Chord: Chord{Mod: mod, Key: KeyV},
			Hold:  dfltHold,
			After: dfltPasteAfter,
		},
		{
			Chord: Chord{Key: KeyEnter},
			Hold:  dfltHold,
		},
	}
}
