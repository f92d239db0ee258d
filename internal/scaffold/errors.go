package scaffold

import (
	"fmt"
	"strings"
)

// GenerationError collects the tables that could not be scaffolded.
type GenerationError struct {
	Failures []Failure
}

func (e *GenerationError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		if f.Table == "" {
			parts = append(parts, f.Err.Error())
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v", f.Table, f.Err))
	}
	return fmt.Sprintf("scaffolding failed for %d item(s): %s", len(e.Failures), strings.Join(parts, "; "))
}

func (e *GenerationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}

// ModelNameError is returned for a table whose derived model name is not a
// usable identifier, or is already generated from Conflict in the same run.
type ModelNameError struct {
	Table    string
	Model    string
	Conflict string
}

func (e *ModelNameError) Error() string {
	if e.Conflict != "" {
		return fmt.Sprintf("model %s is already generated from table %s", e.Model, e.Conflict)
	}
	return fmt.Sprintf("table name does not yield a valid model name (got %q)", e.Model)
}
