package lua

import "errors"

var (
	// ErrNilRuntime is returned when a nil runtime is passed to a function that requires one.
	ErrNilRuntime = errors.New("runtime cannot be nil")

	// ErrColorArg is returned when a color argument is neither a string nor a table.
	ErrColorArg = errors.New("expected color string or {r, g, b[, a]} table")
)
