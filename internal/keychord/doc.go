/*
The keychord package sends short fixed sequences of synthetic key presses
to whichever application has the keyboard focus. The sequence is described
by a slice of Steps and sent by a Trigger through an Injector; the
KeybdInjector does the platform-specific work.
*/
package keychord
