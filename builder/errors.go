// File: errors.go
// Role: sentinel errors for the builder package.
// Callers branch with errors.Is; context is attached with %w.
package builder

import "errors"

// ErrTooFewStates indicates a size parameter below the constructor minimum.
var ErrTooFewStates = errors.New("builder: too few states")

// ErrInvalidBit indicates an output bit other than '0' or '1'.
var ErrInvalidBit = errors.New("builder: invalid bit")

// ErrConstructFailed indicates a nil constructor or a failed graph mutation.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownName indicates a catalogue lookup for an unregistered name.
var ErrUnknownName = errors.New("builder: unknown example")
