// Package periodic implements eventually-periodic binary sequences,
// the values read and written by real transducers.
//
// What:
//
//	A Value denotes the infinite bit sequence
//
//	    initial ⧺ period ⧺ period ⧺ …
//
//	and is always held in canonical form:
//	  - period is primitive (not a shorter word repeated),
//	  - initial does not end with a copy of period,
//	  - the initial/period boundary is pushed as far left as possible
//	    (the last bit of initial never equals the last bit of period).
//
// Equality:
//
//   - Equal identifies identical canonical forms, plus the single boundary
//     collision where a one-bit period stands in for the last initial bit
//     (0[:1:] and 1[:0:] describe the same binary expansion).
//   - EqualInS1 additionally identifies [:0:] with [:1:], the two
//     representations of 0 ≡ 1 on the circle ℝ/ℤ.
//
// Text form:
//
//	String renders "initial[:period:]", e.g. "01[:10:]". Parse reads the same
//	form; a bare binary word s is read as s[:0:].
//
// Errors:
//
//   - ErrEmptyPeriod         period has length zero
//   - ErrNonBinaryCharacter  initial or period contains a symbol other than 0/1
//   - ErrMalformedValue      Parse input is not in the "initial[:period:]" form
//
// Complexity:
//
//   - New:         O(p² + i·p) for |initial| = i, |period| = p
//   - Materialize: O(n)
//   - Equal:       O(i + p)
package periodic
