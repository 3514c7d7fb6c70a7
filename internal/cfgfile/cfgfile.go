package cfgfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/nickwells/pasteat/internal/deadline"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

// DfltFileName is the name of the configuration file expected beside the
// executable
const DfltFileName = "config.json"

const dfltFilePerms os.FileMode = 0o644

// DefaultContent returns the contents of a newly generated configuration
// file
func DefaultContent() []byte {
	d := deadline.Default()
	content := "{\n"
	fields := deadline.Fields()

	for i, f := range fields {
		sep := ","
		if i == len(fields)-1 {
			sep = ""
		}

		content += fmt.Sprintf("  %q: %d%s\n", f.Name, *f.Val(&d), sep)
	}

	content += "}\n"

	return []byte(content)
}

// WriteDefault writes the default configuration to the named file,
// replacing any existing contents
func WriteDefault(fs afero.Fs, path string) error {
	if err := afero.WriteFile(fs, path, DefaultContent(), dfltFilePerms); err != nil {
		return fmt.Errorf("cannot write the default configuration: %w", err)
	}

	return nil
}

// Load reads the Deadline from the named file. Any error returned will
// match ErrNotFound; if the file could be read but not used the error will
// be a *BadConfigError giving the details.
func Load(fs afero.Fs, path string) (deadline.Deadline, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return deadline.Deadline{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return parse(path, data)
}

// parse extracts the Deadline fields from the file contents
func parse(path string, data []byte) (deadline.Deadline, error) {
	var d deadline.Deadline

	bce := newBadConfigError(path)

	if !gjson.ValidBytes(data) {
		bce.add("file", errors.New("the contents are not valid JSON"))

		return d, bce
	}

	for _, f := range deadline.Fields() {
		v, err := intField(data, f.Name)
		if err != nil {
			bce.add(f.Name, err)

			continue
		}

		if err := f.Check(v); err != nil {
			bce.add(f.Name, err)

			continue
		}

		*f.Val(&d) = v
	}

	if bce.hasProblems() {
		return deadline.Deadline{}, bce
	}

	if err := d.Check(); err != nil {
		bce.add("day", err)

		return deadline.Deadline{}, bce
	}

	return d, nil
}

// intField returns the value of the named top-level field. The field must
// be a number with no fractional part.
func intField(data []byte, name string) (int, error) {
	r := gjson.GetBytes(data, name)
	if !r.Exists() {
		return 0, errors.New("the field is missing")
	}

	if r.Type != gjson.Number {
		return 0, fmt.Errorf("the value (%s) is not a number", r.Raw)
	}

	v := r.Int()
	if float64(v) != r.Num {
		return 0, fmt.Errorf("the value (%s) is not a whole number", r.Raw)
	}

	return int(v), nil
}
