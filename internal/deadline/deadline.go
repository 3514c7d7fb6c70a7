package deadline

import (
	"fmt"
	"time"

	"github.com/nickwells/check.mod/v2/check"
)

const (
	dfltYear        = 2025
	dfltMonth       = 9
	dfltDay         = 20
	dfltHour        = 9
	dfltMinute      = 46
	dfltSecond      = 0
	dfltMillisecond = 100

	msPerSecond = int64(time.Second / time.Millisecond)
)

// Deadline holds the calendar fields of the target time
type Deadline struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// Field describes one of the named fields of a Deadline
type Field struct {
	Name  string
	Val   func(d *Deadline) *int
	Check func(int) error
}

// Fields returns the fields of a Deadline in the order in which they are
// written to a configuration file
func Fields() []Field {
	return []Field{
		{
			Name:  "year",
			Val:   func(d *Deadline) *int { return &d.Year },
			Check: check.ValBetween(1, 9999),
		},
		{
			Name:  "month",
			Val:   func(d *Deadline) *int { return &d.Month },
			Check: check.ValBetween(1, 12),
		},
		{
			Name:  "day",
			Val:   func(d *Deadline) *int { return &d.Day },
			Check: check.ValBetween(1, 31),
		},
		{
			Name:  "hour",
			Val:   func(d *Deadline) *int { return &d.Hour },
			Check: check.ValBetween(0, 23),
		},
		{
			Name:  "minute",
			Val:   func(d *Deadline) *int { return &d.Minute },
			Check: check.ValBetween(0, 59),
		},
		{
			Name:  "second",
			Val:   func(d *Deadline) *int { return &d.Second },
			Check: check.ValBetween(0, 59),
		},
		{
			Name:  "millisecond",
			Val:   func(d *Deadline) *int { return &d.Millisecond },
			Check: check.ValBetween(0, 999),
		},
	}
}

// Default returns the Deadline written to a newly generated configuration
// file
func Default() Deadline {
	return Deadline{
		Year:        dfltYear,
		Month:       dfltMonth,
		Day:         dfltDay,
		Hour:        dfltHour,
		Minute:      dfltMinute,
		Second:      dfltSecond,
		Millisecond: dfltMillisecond,
	}
}

// Check returns a non-nil error if any field is out of range or if the day
// does not exist in the given month
func (d Deadline) Check() error {
	for _, f := range Fields() {
		if err := f.Check(*f.Val(&d)); err != nil {
			return fmt.Errorf("bad %s: %w", f.Name, err)
		}
	}

	t := d.wholeSeconds(time.UTC)
	if t.Day() != d.Day {
		return fmt.Errorf("bad day: %04d-%02d has no day %d",
			d.Year, d.Month, d.Day)
	}

	return nil
}

// wholeSeconds returns the time of the Deadline in the given location,
// ignoring the milliseconds
func (d Deadline) wholeSeconds(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day,
		d.Hour, d.Minute, d.Second, 0, loc)
}

// In returns the Deadline as a time in the given location
func (d Deadline) In(loc *time.Location) time.Time {
	return time.UnixMilli(d.EpochMS(loc)).In(loc)
}

// EpochMS returns the Deadline as the number of milliseconds since the Unix
// epoch, interpreting the calendar fields in the given location
func (d Deadline) EpochMS(loc *time.Location) int64 {
	return d.wholeSeconds(loc).Unix()*msPerSecond + int64(d.Millisecond)
}

// String returns the Deadline formatted as YYYY-MM-DD hh:mm:ss.mmm
func (d Deadline) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%03d",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second, d.Millisecond)
}
