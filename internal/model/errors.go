package model

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns that could not be resolved in a
// source file under any resolution policy. It carries both the missing
// keys and the columns actually present so the caller can render an
// actionable message.
type SchemaError struct {
	Source    string
	Missing   []string
	Available []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: required columns not found: [%s]; columns present: [%s]",
		e.Source, strings.Join(e.Missing, ", "), strings.Join(e.Available, ", "))
}

// SourceReadError reports a source that is not a parseable spreadsheet,
// or one with no rows at all.
type SourceReadError struct {
	Source string
	Err    error
}

func (e *SourceReadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: spreadsheet is empty or unreadable", e.Source)
	}
	return fmt.Sprintf("%s: cannot read spreadsheet: %v", e.Source, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}
