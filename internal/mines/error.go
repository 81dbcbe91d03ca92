package mines

import "errors"

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrTooManyMines      = errors.New("mine count must be less than the number of cells")
	ErrOutOfBounds       = errors.New("cell position is out of bounds")
	ErrInvalidParams     = errors.New("invalid game params")
)

// AssertionError is raised (via panic) when a caller breaks an internal
// contract that the public API is supposed to make unreachable.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
