package errors

import "fmt"

// ParseError reports a malformed form-configuration document, with the
// offending line when the decoder exposes one.
type ParseError struct {
	Path string
	Line int
	Err  error
}

// NewParseError constructs a ParseError wrapping the decoder failure.
func NewParseError(path string, line int, err error) error {
	return &ParseError{Path: path, Line: line, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("config parse: %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("config parse: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the decoder error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a form-configuration field holding a value
// outside its accepted set.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

// NewValidationError constructs a ValidationError for one field.
func NewValidationError(field, value, message string) error {
	return &ValidationError{Field: field, Value: value, Message: message}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Value != "" {
		return fmt.Sprintf("config validation: %s: %q %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("config validation: %s: %s", e.Field, e.Message)
}
