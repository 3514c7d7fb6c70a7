package main

import "github.com/nickwells/param.mod/v6/param"

// addExamples adds examples to the usage message
func addExamples(ps *param.PSet) error {
	ps.AddExample(`pasteat`,
		"This will read the time from the configuration file beside the"+
			" program, wait until then and paste into the active window"+
			" and press Enter."+
			"\n\n"+
			"If there is no configuration file, one is created giving"+
			" a default time and the program exits. Edit the file and"+
			" run the program again.")
	ps.AddExample(`pasteat -config /tmp/launch.json -utc`,
		"This will read the time from the file '/tmp/launch.json' and"+
			" interpret it as a UTC time.")
	ps.AddExample(`pasteat -v -dont-fire`,
		"This will show what the program is doing as it waits and, when"+
			" the time arrives, will not send any keys")

	return nil
}
