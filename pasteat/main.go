package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/pasteat/internal/cfgfile"
	"github.com/nickwells/pasteat/internal/deadline"
	"github.com/nickwells/pasteat/internal/keychord"
	"github.com/nickwells/pasteat/internal/tieredwait"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/spf13/afero"
)

// Created: Sat Sep 20 08:51:37 2025

func main() {
	prog := newProg()
	ps := makeParamSet(prog)
	ps.Parse()

	os.Exit(prog.run(stdEnv()))
}

// run loads the target time, waits for it and sends the keys. It returns
// the exit status.
func (prog *prog) run(e env) int {
	defer prog.dbgStack.Start("run", "Starting")()
	intro := prog.dbgStack.Tag()

	path, err := prog.configPath(e)
	if err != nil {
		fmt.Println("Cannot find the configuration file:", err)
		return 1
	}

	verbose.Println(intro, " configuration file: ", path)

	d, ok := prog.loadDeadline(e.fs, path)
	if !ok {
		return 0
	}

	targetMS := d.EpochMS(prog.loc)

	fmt.Printf("Waiting until %s ...\n", d)

	trig := prog.makeTrigger(e)

	prog.waitUntil(e.clock, targetMS)

	firedMS := e.clock.Now().UnixMilli()

	prog.fire(trig)

	fmt.Printf("Triggered at timestamp (ms) = %d\n", firedMS)

	return 0
}

// loadDeadline reads the Deadline from the configuration file. If there
// is no usable file it writes a default one and returns false.
func (prog *prog) loadDeadline(fs afero.Fs, path string) (deadline.Deadline, bool) {
	defer prog.dbgStack.Start("loadDeadline", "Loading the target time")()
	intro := prog.dbgStack.Tag()

	d, err := cfgfile.Load(fs, path)
	if err == nil {
		return d, true
	}

	fmt.Println("Cannot find a usable configuration file;" +
		" generating the default file...")

	var bce *cfgfile.BadConfigError
	if errors.As(err, &bce) && verbose.IsOn() {
		bce.Problems.Report(os.Stdout, path)
	} else {
		verbose.Println(intro, " ", err.Error())
	}

	if err := cfgfile.WriteDefault(fs, path); err != nil {
		fmt.Println("Cannot create the default configuration file:", err)
		return d, false
	}

	fmt.Println("The default configuration file has been created:", path)
	fmt.Println("Please check it and run the program again")

	return d, false
}

// makeTrigger creates the Trigger. This is done before waiting so that
// the keyboard device is ready when the target time arrives.
func (prog *prog) makeTrigger(e env) keychord.Trigger {
	defer prog.dbgStack.Start("makeTrigger", "Preparing the keyboard")()
	intro := prog.dbgStack.Tag()

	mod, err := keychord.ParseModifier(prog.modName)
	if err != nil {
		verbose.Println(intro, " ", err.Error(),
			", using: ", keychord.DfltModifier().String())
		mod = keychord.DfltModifier()
	}

	var inj keychord.Injector = keychord.NopInjector{}

	if prog.doFire {
		inj, err = e.newInjector()
		if err != nil {
			fmt.Println("Cannot send keyboard events:", err)
			fmt.Println("The program will still wait but no keys will be sent")

			inj = keychord.NopInjector{}
		}
	}

	trig := keychord.NewTrigger(inj, mod)
	trig.Sleep = e.clock.Sleep

	return trig
}

// waitUntil waits until the target time, showing the progress through the
// tiers in verbose mode
func (prog *prog) waitUntil(c tieredwait.Clock, targetMS int64) {
	defer prog.dbgStack.Start("waitUntil", "Waiting for the target time")()
	intro := prog.dbgStack.Tag()

	if verbose.IsOn() {
		format := "15:04:05.000000"
		now := c.Now()
		target := time.UnixMilli(targetMS).In(prog.loc)
		remaining := target.Sub(now)
		secs := int(remaining / time.Second)

		verbose.Println(intro, " sleeping for: ", remaining.String(),
			" (", strconv.Itoa(secs), " ", english.Plural("second", secs), ")")
		verbose.Println(intro, "         from: ", now.In(prog.loc).Format(format))
		verbose.Println(intro, "        until: ", target.Format(format))

		if remaining <= 0 {
			verbose.Println(intro, " the target time has already passed")
		}
	}

	if !prog.doSleep {
		verbose.Println(intro, " not sleeping")
		return
	}

	w := tieredwait.New(c)
	w.Observe = func(t tieredwait.Tier, remaining time.Duration) {
		verbose.Println(intro, " ", t.String(), ": ",
			remaining.String(), " remaining")
	}

	w.Wait(targetMS)
}

// fire sends the keys if the program has been asked to
func (prog *prog) fire(trig keychord.Trigger) {
	defer prog.dbgStack.Start("fire", "Sending the keys")()
	intro := prog.dbgStack.Tag()

	if !prog.doFire {
		verbose.Println(intro, " not sending the keys")
		return
	}

	trig.Fire()
}
