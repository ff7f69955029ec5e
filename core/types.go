package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertex indicates a vertex ID below zero.
	ErrNegativeVertex = errors.New("core: vertex ID is negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Attribute keys understood by the transducer validator.
const (
	AttrReads    = "reads"
	AttrPrints   = "prints"
	AttrConsumes = "consumes"
)

// Edge is a directed, labeled connection between two states.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source state.
	From int

	// To is the target state.
	To int

	// Attrs holds the edge labels keyed by AttrReads, AttrPrints, AttrConsumes.
	// Values are stored as supplied; validation happens downstream.
	Attrs map[string]interface{}
}

// Attr returns the raw attribute stored under key.
func (e *Edge) Attr(key string) (interface{}, bool) {
	v, ok := e.Attrs[key]
	return v, ok
}

// EdgeOption sets labels on an edge while it is added.
type EdgeOption func(*Edge)

// WithReads labels the edge with the input bit it reacts to.
func WithReads(bit string) EdgeOption {
	return WithAttr(AttrReads, bit)
}

// WithPrints labels the edge with its output ("" for none).
func WithPrints(out string) EdgeOption {
	return WithAttr(AttrPrints, out)
}

// WithConsumes marks whether taking the edge consumes the input bit.
func WithConsumes(consumes bool) EdgeOption {
	return WithAttr(AttrConsumes, consumes)
}

// WithAttr stores an arbitrary attribute value under key.
func WithAttr(key string, value interface{}) EdgeOption {
	return func(e *Edge) { e.Attrs[key] = value }
}

// Graph is a directed multigraph over integer states.
// Self-loops and parallel edges are always permitted.
type Graph struct {
	mu sync.RWMutex // guards every field below

	nextEdgeID uint64           // monotonic edge ID counter
	vertices   map[int]struct{} // vertex catalog
	edges      map[string]*Edge // edge ID → Edge
	order      []string         // edge IDs in insertion order
	out        map[int][]string // from → outgoing edge IDs in insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[int]struct{}),
		edges:    make(map[string]*Edge),
		out:      make(map[int][]string),
	}
}
