package render

import "fmt"

// RenderError reports a tree that cannot be serialized. Trees produced by the
// translate package never trigger it unless the descriptor carries names that
// are not valid HCL identifiers (e.g. env variable names).
type RenderError struct {
	Block string // path of the offending block, e.g. `job.group.task "web".env`
	Err   error
}

// Error implements the error interface for RenderError.
func (e *RenderError) Error() string {
	if e.Block == "" {
		return fmt.Sprintf("failed to render job spec: %v", e.Err)
	}
	return fmt.Sprintf("failed to render job spec at %s: %v", e.Block, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
