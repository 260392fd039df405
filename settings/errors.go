package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHosts indicates a settings document whose hosts list is absent
	// or empty.
	ErrNoHosts = errors.New("settings: hosts must not be empty")
	// ErrFileExists indicates that WriteDefault found a file already
	// present at the target path.
	ErrFileExists = errors.New("settings: file already exists")
)

// InvalidValueError reports a value that does not fit its field's grammar,
// for example an unknown mode token or a negative tunable.
type InvalidValueError struct {
	Field    string // settings key the value was destined for
	Value    string
	Expected string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("settings: invalid value %q for %s: expected %s", e.Value, e.Field, e.Expected)
}

// OverrideError reports an environment variable whose content could not be
// parsed into its target field. The field is left unchanged.
type OverrideError struct {
	Var   string
	Value string
	Err   error
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("settings: override from %s=%q: %v", e.Var, e.Value, e.Err)
}

func (e *OverrideError) Unwrap() error { return e.Err }
