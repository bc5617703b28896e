package piecetable

import (
	"errors"
	"fmt"
)

// Errors returned by piece table operations.
var (
	// ErrInvalidUTF8 indicates input bytes are not well-formed UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrInvalidPosition indicates an offset outside the addressable document.
	ErrInvalidPosition = errors.New("invalid position")
)

// InvariantError reports broken piece bookkeeping. It is raised as a panic
// when the table fails to decode bytes it validated itself, and returned by
// Validate.
type InvariantError struct {
	Op     string // Operation that detected the problem
	Detail string // What was wrong
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("piecetable: broken invariant in %s: %s", e.Op, e.Detail)
}

func corrupt(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)})
}

// invalidUTF8Error describes the first malformed byte in data.
func invalidUTF8Error(data []byte) error {
	for i := 0; i < len(data); {
		r, size := decodeRune(data[i:])
		if r < 0 {
			return fmt.Errorf("%w at byte %d", ErrInvalidUTF8, i)
		}
		i += size
	}
	return ErrInvalidUTF8
}
