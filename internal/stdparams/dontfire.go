package stdparams

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
)

// AddDontFire adds the common dont-fire parameter. When it is given the
// program does everything except send its keyboard events. The value
// pointed at is cleared when the parameter is given.
func AddDontFire(
	ps *param.PSet,
	doFire *bool,
	opt ...param.OptFunc,
) *param.ByName {
	opt = append(opt,
		param.Attrs(param.DontShowInStdUsage),
		param.AltNames("no-keys", "dry-run"))

	return ps.Add("dont-fire", psetter.Bool{Value: doFire, Invert: true},
		"do everything except send the keyboard events"+
			" - useful for testing the behaviour",
		opt...)
}
