package main

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/pasteat/internal/cfgfile"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/versionparams.mod/versionparams"
)

// makeParamSet generates the param set ready for parsing
func makeParamSet(prog *prog) *param.PSet {
	return paramset.NewOrPanic(
		verbose.AddParams,
		versionparams.AddParams,

		addParams(prog),
		addKeyParams(prog),

		addExamples,

		param.SetProgramDescription(
			"This will wait until the time given in its configuration"+
				" file and then paste into the active window and"+
				" press Enter."+
				"\n\n"+
				"The time is given to the millisecond in the file"+
				" '"+cfgfile.DfltFileName+"' which must have the integer fields:"+
				" year, month, day, hour, minute, second and millisecond."+
				" If the file is missing or any field is missing or out"+
				" of range a default file is written and the program"+
				" exits."+
				"\n\n"+
				"The program sleeps while the time is far away and"+
				" checks the clock every 100 microseconds during the"+
				" last ten seconds."),
	)
}
