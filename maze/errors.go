package maze

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize   = errors.New("width and height must be positive")
	ErrOutOfBounds   = errors.New("coordinate outside the grid")
	ErrEntryIsExit   = errors.New("entry and exit must differ")
	ErrIconMalformed = errors.New("icon rows must all have the same length")
	ErrIconTooLarge  = errors.New("icon does not fit in the grid")
	ErrIconOverlap   = errors.New("icon overlaps entry or exit")

	ErrIsolatedCell     = errors.New("isolated cell")
	ErrUnreachableCell  = errors.New("cell unreachable from entry")
	ErrAlreadyGenerated = errors.New("maze already generated")

	ErrNoPath     = errors.New("no path from entry to exit")
	ErrClosedWall = errors.New("step crosses a closed wall")
)

// ConstructionError is returned by New for invalid parameters.
type ConstructionError struct {
	Err    error
	Detail string
}

func (e *ConstructionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("maze construction: %v", e.Err)
	}
	return fmt.Sprintf("maze construction: %v: %s", e.Err, e.Detail)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

func constructionError(err error, format string, args ...interface{}) error {
	return &ConstructionError{Err: err, Detail: fmt.Sprintf(format, args...)}
}

// GenerationError reports a broken invariant found after carving. It always
// points at a bug, so it is never retried.
type GenerationError struct {
	Err   error
	Coord Coord
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("maze generation: %v at (%s)", e.Err, e.Coord)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
