package model

import "fmt"

// DiagnosticKind names a non-fatal condition observed while loading a source.
type DiagnosticKind string

const (
	// DiagAmbiguousHeader means the header row was not located by token
	// match and the loader fell back to positional column assignment.
	// Column identity in that source is a best-effort guess.
	DiagAmbiguousHeader DiagnosticKind = "ambiguous_header"
)

// Diagnostic is a structured, non-fatal warning surfaced to the caller.
type Diagnostic struct {
	Kind    DiagnosticKind
	Source  string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [%s]: %s", d.Source, d.Kind, d.Message)
}

// AmbiguousHeader builds the degraded-header-detection diagnostic for a source.
func AmbiguousHeader(source string, tokens []string) Diagnostic {
	return Diagnostic{
		Kind:    DiagAmbiguousHeader,
		Source:  source,
		Message: fmt.Sprintf("header row with tokens %v not found, columns assigned by position", tokens),
	}
}
