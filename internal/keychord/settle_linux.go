package keychord

import "time"

// settleTime is how long a newly created uinput device takes before the
// desktop will accept events from it
const settleTime = 2 * time.Second
