package cfgfile

import (
	"errors"
	"fmt"

	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/errutil.mod/errutil"
)

// ErrNotFound is returned, possibly wrapped, when there is no usable
// configuration. A file which exists but cannot be used is reported in the
// same way as one which does not exist.
var ErrNotFound = errors.New("configuration not found")

// BadConfigError records the problems found in a configuration file which
// could be read but not used
type BadConfigError struct {
	Path     string
	Problems *errutil.ErrMap

	badNames []string
}

// newBadConfigError returns a BadConfigError for the named file with an
// empty collection of problems
func newBadConfigError(path string) *BadConfigError {
	return &BadConfigError{
		Path:     path,
		Problems: errutil.NewErrMap(),
	}
}

// add records the problem with the named part of the file
func (e *BadConfigError) add(name string, err error) {
	if len(e.badNames) == 0 || e.badNames[len(e.badNames)-1] != name {
		e.badNames = append(e.badNames, name)
	}

	e.Problems.AddError(name, err)
}

// hasProblems returns true if any problems have been recorded
func (e *BadConfigError) hasProblems() bool {
	return len(e.badNames) > 0
}

// BadNames returns the names of the parts of the file which have problems,
// in the order they were found
func (e *BadConfigError) BadNames() []string {
	return append([]string(nil), e.badNames...)
}

// Error returns the string form of the error
func (e *BadConfigError) Error() string {
	return fmt.Sprintf("%s: %q: bad or missing %s",
		ErrNotFound, e.Path, english.Join(e.badNames, ", ", " and "))
}

// Is allows errors.Is to match a BadConfigError with ErrNotFound
func (e *BadConfigError) Is(target error) bool {
	return target == ErrNotFound
}
