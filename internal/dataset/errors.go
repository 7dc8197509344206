package dataset

import "fmt"

// InputError reports an invalid generation parameter. Nothing is written
// when generation fails with an InputError.
type InputError struct {
	Field  string
	Value  int
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s (%d): %s", e.Field, e.Value, e.Reason)
}

// WriteError reports a failure to persist a partition. Table is empty when
// the failure is not specific to one table (directory creation, rename).
type WriteError struct {
	Table string
	Path  string
	Err   error
}

func (e *WriteError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to write table %s to %s: %v", e.Table, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
