/*
The tieredwait package provides a Waiter which blocks until a target
millisecond timestamp. While the target is far off it sleeps for long
periods; in the last few seconds it polls the clock at a short interval so
that it returns close to the target rather than whenever the operating
system happens to end a long sleep.
*/
package tieredwait
