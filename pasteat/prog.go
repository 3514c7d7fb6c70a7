package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nickwells/pasteat/internal/cfgfile"
	"github.com/nickwells/pasteat/internal/keychord"
	"github.com/nickwells/pasteat/internal/tieredwait"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/spf13/afero"
)

// prog holds program parameters and status
type prog struct {
	// parameters
	cfgPath string
	loc     *time.Location
	modName string

	doSleep bool
	doFire  bool

	dbgStack *verbose.Stack
}

// newProg returns a new prog instance with the default values set
func newProg() *prog {
	return &prog{
		loc:     time.Local,
		modName: keychord.DfltModifier().String(),

		doSleep: true,
		doFire:  true,

		dbgStack: &verbose.Stack{},
	}
}

// env holds the things the program uses to interact with the world
type env struct {
	fs          afero.Fs
	clock       tieredwait.Clock
	exePath     func() (string, error)
	newInjector func() (keychord.Injector, error)
}

// stdEnv returns the env used when the program is run for real
func stdEnv() env {
	return env{
		fs:      afero.NewOsFs(),
		clock:   tieredwait.SystemClock{},
		exePath: executablePath,
		newInjector: func() (keychord.Injector, error) {
			ki, err := keychord.NewKeybdInjector()
			if err != nil {
				return nil, err
			}

			return ki, nil
		},
	}
}

// executablePath returns the pathname of the running program with any
// symbolic links resolved
func executablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(exe)
}

// configPath returns the pathname of the configuration file. This is the
// value given by parameter or else the default file name in the directory
// holding the program.
func (prog *prog) configPath(e env) (string, error) {
	if prog.cfgPath != "" {
		return prog.cfgPath, nil
	}

	exe, err := e.exePath()
	if err != nil {
		return "", fmt.Errorf("cannot find the program's directory: %w", err)
	}

	return filepath.Join(filepath.Dir(exe), cfgfile.DfltFileName), nil
}
