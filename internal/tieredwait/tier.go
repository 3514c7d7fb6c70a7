package tieredwait

import "fmt"

// Tier records how finely the Waiter is polling the clock. The tiers are
// ordered from the coarsest to Fired and a Waiter only ever moves forward
// through them.
type Tier int

const (
	Coarse Tier = iota
	Medium
	Fine
	Fired
)

// String returns the name of the tier
func (t Tier) String() string {
	switch t {
	case Coarse:
		return "coarse"
	case Medium:
		return "medium"
	case Fine:
		return "fine"
	case Fired:
		return "fired"
	}

	return fmt.Sprintf("Tier(%d)", int(t))
}
