/*
The cfgfile package reads and writes the configuration file giving the
target Deadline. The file is a JSON object with seven integer fields: year,
month, day, hour, minute, second and millisecond. A file which is missing
any of these, or which has a value out of range, is treated as if it did
not exist.
*/
package cfgfile
