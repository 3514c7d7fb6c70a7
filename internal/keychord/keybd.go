package keychord

import (
	"fmt"
	"time"

	"github.com/micmonay/keybd_event"
)

// KeybdInjector sends key events through the keybd_event package. On Linux
// this creates a virtual keyboard via uinput which needs write access to
// /dev/uinput.
type KeybdInjector struct {
	kb      keybd_event.KeyBonding
	readyAt time.Time
	now     func() time.Time
	sleep   func(time.Duration)
}

// NewKeybdInjector creates the virtual keyboard. Some platforms need time
// before the new device will deliver events; the first Press will wait
// until then so the injector should be created well before it is used.
func NewKeybdInjector() (*KeybdInjector, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, fmt.Errorf("cannot create the virtual keyboard: %w", err)
	}

	return &KeybdInjector{
		kb:      kb,
		readyAt: time.Now().Add(settleTime),
		now:     time.Now,
		sleep:   time.Sleep,
	}, nil
}

// setChord sets the key and modifiers of the bonding to match the chord
func (ki *KeybdInjector) setChord(c Chord) {
	ki.kb.HasCTRL(c.Mod == ModCtrl)
	ki.kb.HasSuper(c.Mod == ModSuper)
	ki.kb.SetKeys(c.Key)
}

// waitUntilReady sleeps until the device is ready to deliver events. It
// only waits once; later calls return immediately.
func (ki *KeybdInjector) waitUntilReady() {
	if ki.readyAt.IsZero() {
		return
	}

	if wait := ki.readyAt.Sub(ki.now()); wait > 0 {
		ki.sleep(wait)
	}

	ki.readyAt = time.Time{}
}

// Press presses the chord's modifier and then its key
func (ki *KeybdInjector) Press(c Chord) error {
	ki.waitUntilReady()

	ki.setChord(c)

	return ki.kb.Press()
}

// Release releases the chord's key and then its modifier
func (ki *KeybdInjector) Release(c Chord) error {
	ki.setChord(c)

	return ki.kb.Release()
}
