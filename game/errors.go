package game

import "errors"

// Error kinds ending Run
var (
	// ErrIO covers terminal reads and writes
	ErrIO = errors.New("terminal i/o")

	// ErrFormat covers frames that could not be encoded
	ErrFormat = errors.New("frame format")
)

// Error wraps a failure cause with its kind
type Error struct {
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind so errors.Is(err, ErrIO) works alongside the cause chain
func (e *Error) Is(target error) bool {
	return target == e.Kind
}
