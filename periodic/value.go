package periodic

import (
	"fmt"
	"strings"
)

// New constructs the canonical Value for initial ⧺ period^ω.
//
// Returns ErrEmptyPeriod if period is empty and ErrNonBinaryCharacter if
// either argument contains a symbol other than '0' or '1'.
//
// Complexity: O(p² + i·p).
func New(initial, period string) (Value, error) {
	if len(period) == 0 {
		return Value{}, ErrEmptyPeriod
	}
	if i := checkBinary(initial); i >= 0 {
		return Value{}, fmt.Errorf("%w: initial %q at %d", ErrNonBinaryCharacter, initial, i)
	}
	if i := checkBinary(period); i >= 0 {
		return Value{}, fmt.Errorf("%w: period %q at %d", ErrNonBinaryCharacter, period, i)
	}

	initial, period = normalize(initial, period)

	return Value{initial: initial, period: period}, nil
}

// MustNew is like New but panics on invalid input.
// Intended for literals in tests and examples.
func MustNew(initial, period string) Value {
	v, err := New(initial, period)
	if err != nil {
		panic(err)
	}

	return v
}

// Parse reads the text form "initial[:period:]" produced by String.
// A bare binary word s (no period delimiters) is read as s[:0:],
// i.e. a finite expansion followed by infinitely many zeros.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	open := strings.Index(s, openPeriod)
	if open < 0 {
		if strings.Contains(s, closePeriod) {
			return Value{}, fmt.Errorf("%w: %q", ErrMalformedValue, s)
		}
		return New(s, string(Zero))
	}
	if !strings.HasSuffix(s, closePeriod) || len(s) < open+len(openPeriod)+len(closePeriod) {
		return Value{}, fmt.Errorf("%w: %q", ErrMalformedValue, s)
	}

	initial := s[:open]
	period := s[open+len(openPeriod) : len(s)-len(closePeriod)]

	return New(initial, period)
}

// Initial returns the canonical finite prefix.
func (v Value) Initial() string { return v.initial }

// Period returns the canonical repeating block.
func (v Value) Period() string { return v.period }

// String renders v as "initial[:period:]".
func (v Value) String() string {
	return v.initial + openPeriod + v.period + closePeriod
}

// Equal reports whether v and o denote the same raw bit sequence.
//
// Identical canonical forms are equal. Otherwise the only identification is
// the boundary collision: initials of the same nonzero length agreeing on
// every bit but the last, where each last bit equals the other's one-bit
// period (0[:1:] == 1[:0:]).
func (v Value) Equal(o Value) bool {
	if v.initial == o.initial && v.period == o.period {
		return true
	}
	if len(v.initial) != len(o.initial) || len(v.initial) == 0 {
		return false
	}

	return v.boundaryCollision(o)
}

// EqualInS1 reports whether v and o denote the same point of the circle ℝ/ℤ.
// It coarsens Equal by also identifying [:0:] with [:1:].
func (v Value) EqualInS1(o Value) bool {
	if v.initial == o.initial && v.period == o.period {
		return true
	}
	if len(v.initial) != len(o.initial) {
		return false
	}
	if len(v.initial) == 0 {
		return (v.period == "0" && o.period == "1") || (v.period == "1" && o.period == "0")
	}

	return v.boundaryCollision(o)
}

// boundaryCollision assumes equal, nonzero initial lengths.
func (v Value) boundaryCollision(o Value) bool {
	n := len(v.initial)
	if v.initial[:n-1] != o.initial[:n-1] {
		return false
	}

	return v.initial[n-1:] == o.period && o.initial[n-1:] == v.period
}

// Materialize returns the first n bits of the sequence.
// Negative n is treated as zero.
func (v Value) Materialize(n int) string {
	if n <= 0 {
		return ""
	}
	if n <= len(v.initial) {
		return v.initial[:n]
	}

	var b strings.Builder
	b.Grow(n)
	b.WriteString(v.initial)
	for b.Len() < n {
		rest := n - b.Len()
		if rest >= len(v.period) {
			b.WriteString(v.period)
		} else {
			b.WriteString(v.period[:rest])
		}
	}

	return b.String()
}

// Approx interprets the first precision bits as the binary fraction
// 0.b₁b₂…, i.e. value/2^precision. It is an approximation, not exact.
func (v Value) Approx(precision int) float64 {
	bits := v.Materialize(precision)
	sum, scale := 0.0, 0.5
	for i := 0; i < len(bits); i++ {
		if bits[i] == One {
			sum += scale
		}
		scale /= 2
	}

	return sum
}

// ApproxDefault is Approx(DefaultPrecision).
func (v Value) ApproxDefault() float64 {
	return v.Approx(DefaultPrecision)
}

// Prepend returns the canonical Value of prefix ⧺ v.
func (v Value) Prepend(prefix string) (Value, error) {
	return New(prefix+v.initial, v.period)
}
