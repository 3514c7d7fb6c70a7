package tieredwait_test

import (
	"testing"
	"time"

	"github.com/nickwells/mathutil.mod/v2/mathutil"
	"github.com/nickwells/pasteat/internal/tieredwait"
	"github.com/nickwells/testhelper.mod/v2/testhelper"
)

// fakeClock is a Clock whose time only moves when Sleep is called. Each
// sleep is extended by the overshoot and the jump func, if set, is called
// after each sleep and can step the clock.
type fakeClock struct {
	now       time.Time
	overshoot time.Duration
	sleeps    []time.Duration
	jump      func(sleepCount int) time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d + c.overshoot)

	if c.jump != nil {
		c.now = c.now.Add(c.jump(len(c.sleeps)))
	}
}

// observation records a single call of the Observe func
type observation struct {
	tier      tieredwait.Tier
	remaining time.Duration
}

// startTime is deliberately not aligned to a millisecond
var startTime = time.Date(2025, time.September, 20, 9, 40, 0, 12345, time.UTC)

// runWait creates a Waiter using the clock, waits for the target and
// returns the observations made
func runWait(c *fakeClock, targetMS int64) []observation {
	var obs []observation

	w := tieredwait.New(c)
	w.Observe = func(t tieredwait.Tier, r time.Duration) {
		obs = append(obs, observation{tier: t, remaining: r})
	}

	w.Wait(targetMS)

	return obs
}

// checkTierOrder reports an error if the tiers observed ever move back
// towards Coarse or if Fired is not observed exactly once, at the end.
func checkTierOrder(t *testing.T, id string, obs []observation) {
	t.Helper()

	if len(obs) == 0 {
		t.Log(id)
		t.Errorf("\t: no tiers were observed")

		return
	}

	for i := 1; i < len(obs); i++ {
		if obs[i].tier < obs[i-1].tier {
			t.Log(id)
			t.Logf("\t: observation %d: %s", i-1, obs[i-1].tier)
			t.Logf("\t: observation %d: %s", i, obs[i].tier)
			t.Errorf("\t: the tier moved backwards")
		}
	}

	fireCount := 0

	for _, o := range obs {
		if o.tier == tieredwait.Fired {
			fireCount++
		}
	}

	testhelper.DiffInt(t, id, "times fired", fireCount, 1)

	if last := obs[len(obs)-1].tier; last != tieredwait.Fired {
		t.Log(id)
		t.Errorf("\t: the last tier observed was %s, not fired", last)
	}
}

func TestWait(t *testing.T) {
	startMS := startTime.UnixMilli()

	testCases := []struct {
		testhelper.ID
		targetMS       int64
		overshoot      time.Duration
		expFirstTier   tieredwait.Tier
		expFirstSleep  time.Duration
		expNoSleep     bool
		expTiersPassed []tieredwait.Tier
	}{
		{
			ID:             testhelper.MkID("target in the past"),
			targetMS:       startMS - 5000,
			expFirstTier:   tieredwait.Fired,
			expNoSleep:     true,
			expTiersPassed: []tieredwait.Tier{tieredwait.Fired},
		},
		{
			ID:             testhelper.MkID("target is now"),
			targetMS:       startMS,
			expFirstTier:   tieredwait.Fired,
			expNoSleep:     true,
			expTiersPassed: []tieredwait.Tier{tieredwait.Fired},
		},
		{
			ID:            testhelper.MkID("target 5 minutes away"),
			targetMS:      startMS + 5*60*1000,
			expFirstTier:  tieredwait.Coarse,
			expFirstSleep: tieredwait.DfltCoarseSleep,
			expTiersPassed: []tieredwait.Tier{
				tieredwait.Coarse,
				tieredwait.Medium,
				tieredwait.Fine,
				tieredwait.Fired,
			},
		},
		{
			ID:            testhelper.MkID("target 60.5 seconds away"),
			targetMS:      startMS + 60500,
			expFirstTier:  tieredwait.Coarse,
			expFirstSleep: 59500 * time.Millisecond,
			expTiersPassed: []tieredwait.Tier{
				tieredwait.Coarse,
				tieredwait.Fine,
				tieredwait.Fired,
			},
		},
		{
			ID:            testhelper.MkID("target 30 seconds away"),
			targetMS:      startMS + 30000,
			expFirstTier:  tieredwait.Medium,
			expFirstSleep: tieredwait.DfltMediumSleep,
			expTiersPassed: []tieredwait.Tier{
				tieredwait.Medium,
				tieredwait.Fine,
				tieredwait.Fired,
			},
		},
		{
			ID:            testhelper.MkID("target 10.005 seconds away, overshoot"),
			targetMS:      startMS + 10005,
			overshoot:     30 * time.Millisecond,
			expFirstTier:  tieredwait.Medium,
			expFirstSleep: 9005 * time.Millisecond,
			expTiersPassed: []tieredwait.Tier{
				tieredwait.Medium,
				tieredwait.Fine,
				tieredwait.Fired,
			},
		},
		{
			ID:            testhelper.MkID("target 3 seconds away"),
			targetMS:      startMS + 3000,
			expFirstTier:  tieredwait.Fine,
			expFirstSleep: tieredwait.DfltFinePoll,
			expTiersPassed: []tieredwait.Tier{
				tieredwait.Fine,
				tieredwait.Fired,
			},
		},
	}

	for _, tc := range testCases {
		c := &fakeClock{now: startTime, overshoot: tc.overshoot}

		obs := runWait(c, tc.targetMS)

		checkTierOrder(t, tc.IDStr(), obs)

		if len(obs) > 0 && obs[0].tier != tc.expFirstTier {
			t.Log(tc.IDStr())
			t.Logf("\t: expected first tier: %s", tc.expFirstTier)
			t.Logf("\t:   actual first tier: %s", obs[0].tier)
			t.Errorf("\t: bad first tier")
		}

		passed := []tieredwait.Tier{}
		for _, o := range obs {
			if len(passed) == 0 || passed[len(passed)-1] != o.tier {
				passed = append(passed, o.tier)
			}
		}

		testhelper.DiffSlice(t, tc.IDStr(), "tiers passed through",
			passed, tc.expTiersPassed)

		if tc.expNoSleep {
			testhelper.DiffInt(t, tc.IDStr(), "sleep count", len(c.sleeps), 0)

			if !c.now.Equal(startTime) {
				t.Log(tc.IDStr())
				t.Errorf("\t: the clock moved: %s", c.now.Sub(startTime))
			}

			continue
		}

		if len(c.sleeps) == 0 {
			t.Log(tc.IDStr())
			t.Errorf("\t: expected to sleep at least once")

			continue
		}

		if c.sleeps[0] != tc.expFirstSleep {
			t.Log(tc.IDStr())
			t.Logf("\t: expected first sleep: %s", tc.expFirstSleep)
			t.Logf("\t:   actual first sleep: %s", c.sleeps[0])
			t.Errorf("\t: bad first sleep")
		}

		if c.now.UnixMilli() < tc.targetMS {
			t.Log(tc.IDStr())
			t.Errorf("\t: returned %d ms early", tc.targetMS-c.now.UnixMilli())
		}
	}
}

func TestWaitPrecision(t *testing.T) {
	startMS := startTime.UnixMilli()

	for _, offset := range []int64{1, 999, 3000, 9999, 10000, 45678, 123456} {
		c := &fakeClock{now: startTime}
		targetMS := startMS + offset

		_ = runWait(c, targetMS)

		gap := c.now.Sub(time.UnixMilli(targetMS))
		if gap < 0 ||
			!mathutil.AlmostEqual(
				float64(gap), 0, float64(tieredwait.DfltFinePoll)) {
			t.Logf("target offset: %d ms", offset)
			t.Logf("\t: fired %s after the target", gap)
			t.Errorf("\t: the fire time is not within a fine poll interval")
		}

		polling := false

		for _, s := range c.sleeps {
			if s == tieredwait.DfltFinePoll {
				polling = true
			} else if polling {
				t.Logf("target offset: %d ms", offset)
				t.Errorf("\t: slept for %s after polling finely", s)

				break
			}
		}
	}
}

func TestWaitClockSteppedBack(t *testing.T) {
	const id = "clock stepped back 5 minutes during the medium tier"

	startMS := startTime.UnixMilli()

	c := &fakeClock{
		now: startTime,
		jump: func(sleepCount int) time.Duration {
			if sleepCount == 1 {
				return -5 * time.Minute
			}

			return 0
		},
	}

	obs := runWait(c, startMS+30000)

	checkTierOrder(t, id, obs)

	for _, o := range obs {
		if o.tier == tieredwait.Coarse {
			t.Log(id)
			t.Errorf("\t: went back to the coarse tier with %s remaining",
				o.remaining)

			break
		}
	}

	for _, s := range c.sleeps {
		if s > tieredwait.DfltMediumSleep {
			t.Log(id)
			t.Errorf("\t: slept for %s, longer than the medium interval", s)

			break
		}
	}
}

func TestTierString(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		tier   tieredwait.Tier
		expStr string
	}{
		{ID: testhelper.MkID("coarse"), tier: tieredwait.Coarse, expStr: "coarse"},
		{ID: testhelper.MkID("medium"), tier: tieredwait.Medium, expStr: "medium"},
		{ID: testhelper.MkID("fine"), tier: tieredwait.Fine, expStr: "fine"},
		{ID: testhelper.MkID("fired"), tier: tieredwait.Fired, expStr: "fired"},
		{ID: testhelper.MkID("unknown"), tier: tieredwait.Tier(42), expStr: "Tier(42)"},
	}

	for _, tc := range testCases {
		testhelper.DiffString(t, tc.IDStr(), "tier name",
			tc.tier.String(), tc.expStr)
	}
}
