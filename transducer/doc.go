// Package transducer implements real transducers: finite deterministic
// machines that read an eventually-periodic binary expansion of a point of
// the circle ℝ/ℤ and write another one.
//
// What:
//
//   - New validates a raw core.Graph and builds an immutable Automaton.
//     Validation runs, in order:
//     1. states are exactly 0..n-1                 (ErrNonContiguousNodeSet)
//     2. every edge has reads/prints/consumes      (ErrMissingOrInvalidField)
//     3. one outgoing edge per (state, bit)        (ErrAmbiguousTransition, ErrIncompleteTransition)
//     4. no cycle of edges that all print nothing  (ErrPrintlessCycle)
//     5. every state reachable from state 0        (ErrUnreachableState)
//     6. cache loop[state][bit], the output of reading bit forever from state
//     7. 0[:1:] and 1[:0:] give equal outputs from every state (ErrInconsistentCircleBehavior)
//   - FromRecord runs the same pipeline on a persisted record.Record.
//   - Evaluate simulates an Automaton on a periodic.Value input and returns the
//     periodic.Value output, by cycle detection over (state, phase) pairs.
//   - Inputs and InitialBehavior cover every word of a given length, up to
//     MaxInputBits (ErrNegativeLength, ErrInputTooLong).
//   - Bisimilar decides behavioral equivalence by relational closure over
//     reachable state pairs.
//   - Route gives a shortest chain of states from state 0.
//
// Reading one bit:
//
//	Step follows the (state, bit) edge and keeps following same-bit edges
//	until one consumes the bit (FiniteChunk), or a state repeats (Saturated):
//	the bit read forever then determines all remaining output.
//
// Complexity:
//
//   - New:       O(V + E) structure checks, O(V²) loop cache, O(V²) circle check
//   - Evaluate:  O(|initial|·V + V·|period|·V)
//   - Bisimilar: O(Va·Vb)
//
// Concurrency:
//
//	An Automaton is immutable after New returns and safe for concurrent use.
package transducer
