package dfs

import (
	"errors"

	"github.com/katalvlaran/realtransducer/core"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("dfs: invalid option supplied")

// Option configures DetectCycles.
type Option func(*Options)

// Options holds the parameters of a cycle search.
type Options struct {
	// FilterEdge decides whether an edge takes part in the search.
	FilterEdge func(e *core.Edge) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options that accept every edge.
func DefaultOptions() Options {
	return Options{
		FilterEdge: func(*core.Edge) bool { return true },
	}
}

// WithEdgeFilter restricts the search to edges for which fn returns true.
// A nil fn is recorded as ErrOptionViolation.
func WithEdgeFilter(fn func(e *core.Edge) bool) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = ErrOptionViolation
			return
		}
		o.FilterEdge = fn
	}
}
