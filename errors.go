package validjson

import (
	"fmt"
)

// ParseError reports malformed document text.
type ParseError struct {
	// Format is document format name, like "JSON" or "YAML".
	Format string
	// Err is parser diagnostic.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s parsing error: %s", e.Format, e.Err)
}

// Unwrap returns parser diagnostic.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError reports document that cannot be read.
type IOError struct {
	Format string
	// Path is file path, empty if document was read from io.Reader.
	Path string
	Err  error
}

// Error implements error.
func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("Could not read %s data: %s", e.Format, e.Err)
	}
	return fmt.Sprintf("Could not open %s file: %s", e.Format, e.Path)
}

// Unwrap returns underlying I/O error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// PresenceError reports missing required key.
type PresenceError struct {
	Label string
	// Path is JSON Pointer to the enclosing object.
	Path string
	Key  string
}

// Error implements error.
func (e *PresenceError) Error() string {
	return fmt.Sprintf("In %s, required key %q not found", e.Label, e.Key)
}

// TypeError reports value of unexpected JSON type.
type TypeError struct {
	Label string
	// Path is JSON Pointer to the offending value.
	Path string
	// Key is the field key, empty for document root.
	Key string
	// Expected describes expected value, like "a string value".
	Expected string
}

// Error implements error.
func (e *TypeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("In %s, expected %s at document root", e.Label, e.Expected)
	}
	return fmt.Sprintf("In %s, expected %s for key %q", e.Label, e.Expected, e.Key)
}

// ValidationError reports well-typed value violating a constraint.
type ValidationError struct {
	Label string
	// Path is JSON Pointer to the offending value.
	Path string
	Key  string
	// Err is the rule violation.
	Err error
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("In %s, %s", e.Label, e.Err)
}

// Unwrap returns the rule violation.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
