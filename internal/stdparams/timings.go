package stdparams

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
	"github.com/nickwells/verbose.mod/verbose"
)

// AddTiming adds the common show-timings parameter used to set the
// ShowTimings field in a verbose.Stack struct
func AddTiming(
	ps *param.PSet,
	stack *verbose.Stack,
	opt ...param.OptFunc,
) *param.ByName {
	opt = append(opt,
		param.Attrs(param.DontShowInStdUsage|param.CommandLineOnly),
		param.AltNames("show-timing", "show-times"))

	return ps.Add("show-timings", psetter.Bool{Value: &stack.ShowTimings},
		"report the time taken for the various stages of the program.",
		opt...)
}
