/*
The deadline package provides the Deadline type which records the date and
time (to the millisecond) at which something should happen. A Deadline has
no timezone of its own; it is converted into an absolute millisecond
timestamp in whichever location the caller supplies.
*/
package deadline
