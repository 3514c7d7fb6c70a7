package main

import (
	"fmt"
	"time"

	"github.com/nickwells/filecheck.mod/filecheck"
	"github.com/nickwells/location.mod/location"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
	"github.com/nickwells/pasteat/internal/cfgfile"
	"github.com/nickwells/pasteat/internal/keychord"
	"github.com/nickwells/pasteat/internal/stdparams"
)

const (
	paramGroupNameTime = param.DfltGroupName + "-time"
	paramGroupNameKeys = param.DfltGroupName + "-keys"

	paramNameConfig   = "config"
	paramNameTimezone = "timezone"
	paramNameUTC      = "utc"
	paramNameModifier = "modifier"
	paramNameDontSlp  = "dont-sleep"
)

// setLocation returns an action func that will set the location in which
// the target time is interpreted
func setLocation(prog *prog, loc *time.Location) param.ActionFunc {
	return func(_ location.L, _ *param.ByName, _ []string) error {
		prog.loc = loc
		return nil
	}
}

// addParams adds the parameters for this program
func addParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.Add(paramNameConfig,
			psetter.Pathname{
				Value:       &prog.cfgPath,
				Expectation: filecheck.Provisos{Existence: filecheck.Optional},
			},
			"the configuration file giving the time to wait for."+
				" If this is not given the file called '"+
				cfgfile.DfltFileName+"' in the same directory as"+
				" the program is used.",
			param.AltNames("c", "cfg"),
		)

		ps.Add(paramNameDontSlp, psetter.Bool{Value: &prog.doSleep, Invert: true},
			"do everything except wait - useful for testing the behaviour",
			param.Attrs(param.DontShowInStdUsage),
		)

		stdparams.AddDontFire(ps, &prog.doFire)
		stdparams.AddTiming(ps, prog.dbgStack)

		ps.AddGroup(paramGroupNameTime,
			"how the time in the configuration file is interpreted.")

		tzParam := ps.Add(paramNameTimezone,
			psetter.TimeLocation{Value: &prog.loc},
			"the timezone in which the time in the configuration file is"+
				" interpreted. The default is your local timezone.",
			param.AltNames("tz", "location"),
			param.GroupName(paramGroupNameTime),
		)

		utcParam := ps.Add(paramNameUTC, psetter.Nil{},
			"interpret the time in the configuration file as UTC.",
			param.PostAction(setLocation(prog, time.UTC)),
			param.GroupName(paramGroupNameTime),
			param.SeeAlso(paramNameTimezone),
		)

		ps.AddFinalCheck(func() error {
			if tzParam.HasBeenSet() && utcParam.HasBeenSet() {
				return fmt.Errorf("you may set at most one of %q or %q",
					tzParam.Name(), utcParam.Name())
			}

			return nil
		})

		return nil
	}
}

// addKeyParams adds the parameters controlling the keys sent
func addKeyParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(paramGroupNameKeys,
			"the keys sent when the time arrives.")

		ps.Add(paramNameModifier,
			psetter.Enum[string]{
				Value: &prog.modName,
				AllowedVals: psetter.AllowedVals[string]{
					keychord.ModNameCtrl: "the Control key," +
						" used for pasting on Linux and Windows",
					keychord.ModNameSuper: "the Command key on macOS" +
						" (the Windows or Super key elsewhere)",
				},
			},
			"the modifier key held down while 'V' is pressed to paste."+
				" The default is the usual key for this platform.",
			param.AltNames("mod"),
			param.GroupName(paramGroupNameKeys),
		)

		return nil
	}
}
