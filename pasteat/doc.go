/*
The pasteat program waits until a given moment, to the millisecond, and
then pastes the clipboard into the application that has the keyboard focus
and presses Enter.

The moment to wait for is read from a file called config.json in the same
directory as the program. If that file is missing, or any of its values
are missing or out of range, a default file is written and the program
exits so that you can edit it before running the program again.

The program sleeps for long periods while the target time is far away and
polls the clock every 100 microseconds over the last ten seconds so that
the keys are sent as close as possible to the target time.
*/
package main
