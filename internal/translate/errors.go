package translate

import (
	"errors"
	"fmt"
)

// ErrUnknownAccessMode is wrapped by TranslationError when a volume's access
// mode code is not recognized.
var ErrUnknownAccessMode = errors.New("unknown access mode")

// TranslationError reports a model value that fails one of the engine's
// normalization rules. No document is produced when it is returned.
type TranslationError struct {
	Block string // type and label of the offending output block, e.g. `volume "data"`
	Field string
	Value string
	Err   error
}

// Error implements the error interface for TranslationError.
func (e *TranslationError) Error() string {
	return fmt.Sprintf("%s: %s %q: %v", e.Block, e.Field, e.Value, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}
