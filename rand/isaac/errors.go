package isaac

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is matched by errors.Is for every *LengthMismatchError.
var ErrLengthMismatch = errors.New("bad length in generator state")

// LengthMismatchError reports a serialized state of the wrong word count.
type LengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: expected %d words, got %d", ErrLengthMismatch, e.Expected, e.Actual)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }
