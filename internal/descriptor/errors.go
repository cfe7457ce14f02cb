package descriptor

import "fmt"

// InputAccessError reports a descriptor source that cannot be opened or read.
type InputAccessError struct {
	Path string
	Err  error
}

// Error implements the error interface for InputAccessError.
func (e *InputAccessError) Error() string {
	return fmt.Sprintf("cannot read descriptor %s: %v", e.Path, e.Err)
}

func (e *InputAccessError) Unwrap() error {
	return e.Err
}

// ParseError reports a descriptor that is not well-formed for its format or
// does not match the descriptor schema (missing required field, wrong scalar
// type, conflicting aliases). Err carries the underlying diagnostic.
type ParseError struct {
	Format Format
	Err    error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s descriptor: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
