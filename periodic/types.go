package periodic

import "errors"

// Sentinel errors for value construction.
var (
	// ErrEmptyPeriod indicates a zero-length period.
	ErrEmptyPeriod = errors.New("periodic: period is empty")

	// ErrNonBinaryCharacter indicates a symbol other than '0' or '1'.
	ErrNonBinaryCharacter = errors.New("periodic: non-binary character")

	// ErrMalformedValue indicates text that is not of the form "initial[:period:]".
	ErrMalformedValue = errors.New("periodic: malformed value")
)

// Binary symbols.
const (
	Zero = '0'
	One  = '1'
)

// DefaultPrecision is the number of bits Approx materializes by default.
const DefaultPrecision = 50

// Delimiters of the text form "initial[:period:]".
const (
	openPeriod  = "[:"
	closePeriod = ":]"
)

// Value is an eventually-periodic binary sequence in canonical form.
//
// Values are immutable; every operation returns a new Value. The zero Value
// has an empty period and is not a valid sequence; obtain Values from New,
// MustNew or Parse.
type Value struct {
	// initial is the finite prefix, possibly empty.
	initial string

	// period is the primitive repeating block, never empty.
	period string
}
