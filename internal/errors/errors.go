// Package errors defines the structured diagnostics reported by a
// generation run.
package errors

import (
	"fmt"
	"strings"
)

// Severity indicates how serious a diagnostic is.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityHint:
		return "hint"
	}
	return "unknown"
}

// Stage is the pipeline phase that produced a diagnostic.
type Stage string

const (
	StageConfig   Stage = "config"
	StageParse    Stage = "parse"
	StageClassify Stage = "classify"
	StageGenerate Stage = "generate"
)

// Diagnostic codes.
const (
	CodeNoRoot         = "E101" // no canvas or frame found
	CodeEmptyDocument  = "E102" // document has no children
	CodeNilInput       = "E103" // no design node supplied
	CodeGeneration     = "E201" // markup emission failed
	CodePanic          = "E301" // internal panic recovered
	CodeUnknownSetting = "E401" // unsupported configuration value
)

// Error is a single diagnostic.
type Error struct {
	Code        string   // "E101" style code
	Stage       Stage    // phase that failed
	Severity    Severity // error, warning, or hint
	Message     string   // human-readable description
	Recoverable bool     // false aborts the run
	Suggestion  string   // e.g. "did you mean 'camel'?" (optional)
	Err         error    // underlying cause, if any
}

// New builds a non-recoverable error diagnostic from a Go error.
func New(code string, stage Stage, err error) *Error {
	return &Error{
		Code:     code,
		Stage:    stage,
		Severity: SeverityError,
		Message:  err.Error(),
		Err:      err,
	}
}

// Warning builds a recoverable warning diagnostic.
func Warning(code string, stage Stage, message, suggestion string) *Error {
	return &Error{
		Code:        code,
		Stage:       stage,
		Severity:    SeverityWarning,
		Message:     message,
		Recoverable: true,
		Suggestion:  suggestion,
	}
}

func (e *Error) Error() string { return e.Format() }

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Format returns a single-line representation without ANSI colour.
func (e *Error) Format() string {
	var b strings.Builder
	if e.Stage != "" {
		b.WriteString(string(e.Stage))
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Code != "" {
		b.WriteString(" [")
		b.WriteString(e.Code)
		b.WriteString("]")
	}
	return b.String()
}

// List collects the diagnostics of one run.
type List struct {
	items []*Error
}

// Add appends a diagnostic.
func (l *List) Add(e *Error) {
	l.items = append(l.items, e)
}

// AddError is a shorthand for adding a non-recoverable error.
func (l *List) AddError(code string, stage Stage, err error) {
	l.Add(New(code, stage, err))
}

// AddWarning is a shorthand for adding a recoverable warning.
func (l *List) AddWarning(code string, stage Stage, message, suggestion string) {
	l.Add(Warning(code, stage, message, suggestion))
}

// HasErrors reports whether any SeverityError entry was added.
func (l *List) HasErrors() bool {
	return len(l.Errors()) > 0
}

// HasWarnings reports whether any SeverityWarning entry was added.
func (l *List) HasWarnings() bool {
	return len(l.Warnings()) > 0
}

// Errors returns only the SeverityError entries.
func (l *List) Errors() []*Error {
	return l.filter(SeverityError)
}

// Warnings returns only the SeverityWarning entries.
func (l *List) Warnings() []*Error {
	return l.filter(SeverityWarning)
}

func (l *List) filter(s Severity) []*Error {
	var out []*Error
	for _, e := range l.items {
		if e.Severity == s {
			out = append(out, e)
		}
	}
	return out
}

// All returns every diagnostic in insertion order.
func (l *List) All() []*Error {
	return l.items
}

// Len returns the number of diagnostics.
func (l *List) Len() int {
	return len(l.items)
}

// Format returns a multiline listing of all diagnostics.
func (l *List) Format() string {
	var b strings.Builder
	for i, e := range l.items {
		if i > 0 {
			b.WriteString("\n")
		}
		switch e.Severity {
		case SeverityError:
			fmt.Fprintf(&b, "✗ %s", e.Format())
		case SeverityWarning:
			fmt.Fprintf(&b, "⚠ %s", e.Format())
		default:
			fmt.Fprintf(&b, "· %s", e.Format())
		}
		if e.Suggestion != "" {
			fmt.Fprintf(&b, "\n  suggestion: %s", e.Suggestion)
		}
	}
	return b.String()
}
