package parser

import "fmt"

// NotFoundError is returned by NewLogParser when the source path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find file at: %s", e.Path)
}

// ParseError reports a timestamp column that could not be interpreted as
// date-times. Line is the 1-based source line of the first offending value.
type ParseError struct {
	Path  string
	Line  int
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: cannot parse timestamp %q: %v", e.Path, e.Line, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
