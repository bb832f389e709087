package rangeindex

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is returned when a RangeIndex cannot be constructed
	// from the given parameters: a negative size or a malformed snapshot.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexOutOfRange is returned when a position or a bound of a
	// nonempty range lies outside [0, n). The index is left unchanged.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrOwnerStopped is returned by Owner operations once Run has returned.
	ErrOwnerStopped = errors.New("owner stopped")
)

func outOfRange(format string, args ...interface{}) error {
	return errors.WithMessagef(ErrIndexOutOfRange, format, args...)
}

func invalidInput(format string, args ...interface{}) error {
	return errors.WithMessagef(ErrInvalidInput, format, args...)
}
