package transducer

import (
	"errors"

	"github.com/katalvlaran/realtransducer/periodic"
)

// Validation failures; each aborts construction.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to New.
	ErrGraphNil = errors.New("transducer: graph is nil")

	// ErrNonContiguousNodeSet indicates states other than exactly 0..n-1.
	ErrNonContiguousNodeSet = errors.New("transducer: node set is not 0..n-1")

	// ErrMissingOrInvalidField indicates an edge without a valid reads, prints or consumes label.
	ErrMissingOrInvalidField = errors.New("transducer: edge field missing or invalid")

	// ErrIncompleteTransition indicates a state with no outgoing edge for some bit.
	ErrIncompleteTransition = errors.New("transducer: incomplete transition")

	// ErrAmbiguousTransition indicates a state with several outgoing edges for one bit.
	ErrAmbiguousTransition = errors.New("transducer: ambiguous transition")

	// ErrPrintlessCycle indicates a cycle whose edges all print nothing.
	ErrPrintlessCycle = errors.New("transducer: printless cycle")

	// ErrUnreachableState indicates a state not reachable from state 0.
	ErrUnreachableState = errors.New("transducer: unreachable state")

	// ErrInconsistentCircleBehavior indicates different outputs on 0[:1:] and 1[:0:].
	ErrInconsistentCircleBehavior = errors.New("transducer: inconsistent behavior on 0[:1:] and 1[:0:]")
)

// Usage errors at the evaluation boundary.
var (
	// ErrUnknownState indicates a start state outside 0..n-1.
	ErrUnknownState = errors.New("transducer: unknown state")

	// ErrNegativeLength indicates a negative input length.
	ErrNegativeLength = errors.New("transducer: negative input length")

	// ErrInputTooLong indicates an input length above MaxInputBits.
	ErrInputTooLong = errors.New("transducer: input length too long")
)

// MaxInputBits bounds Inputs and the behavior fingerprints built on it.
// 2^24 words is the largest table worth materializing.
const MaxInputBits = 24

// Alphabet is the input and output alphabet, in index order.
var Alphabet = [2]byte{periodic.Zero, periodic.One}

// Transition is the single edge taken from a state on one input bit.
type Transition struct {
	// Target is the state entered.
	Target int

	// Output is "", "0" or "1".
	Output string

	// Consumes reports whether the input bit is consumed.
	Consumes bool
}

// Automaton is a validated real transducer. State 0 is the start state.
//
// The transition table and the loop cache are indexed [state][bit] and are
// never modified after New returns.
type Automaton struct {
	trans [][2]Transition
	loops [][2]periodic.Value
}

// Chunk is the result of reading one input bit or a finite input word.
// It is either a FiniteChunk or a Saturated value.
type Chunk interface {
	chunk()
}

// FiniteChunk is finite output produced before the input was consumed.
type FiniteChunk string

// Saturated is output fully determined by a bit read forever;
// no further input will be read.
type Saturated struct {
	Value periodic.Value
}

func (FiniteChunk) chunk() {}
func (Saturated) chunk()   {}

// bitIndex maps '0'/'1' to 0/1.
func bitIndex(b byte) int { return int(b - periodic.Zero) }
