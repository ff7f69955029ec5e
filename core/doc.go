// Package core provides the raw, labeled, directed multigraph from which
// real transducers are built.
//
// A Graph G = (V,E) has integer vertex IDs (states) and parallel edges.
// Each Edge carries an attribute map holding the transducer labels:
//
//	reads     string  "0" or "1"          the input bit the edge reacts to
//	prints    string  "", "0" or "1"      the output emitted when taken
//	consumes  bool                        whether the input bit is consumed
//
// The graph does not validate labels; it stores whatever the caller supplies,
// including missing or ill-typed values, so that validators downstream can
// report precise reasons. Use the EdgeOption setters WithReads, WithPrints,
// WithConsumes, or the untyped WithAttr.
//
// Core Methods:
//
//	AddVertex(id int) error                                  // O(1)
//	HasVertex(id int) bool                                   // O(1)
//	Vertices() []int                                         // O(V·log V), ascending
//	AddEdge(from, to int, opts ...EdgeOption) (string, error)// O(1) amortized
//	SetEdgeAttrs(id string, opts ...EdgeOption) error        // O(1), relabel in place
//	Edges() []*Edge                                          // O(E), insertion order
//	OutEdges(id int) ([]*Edge, error)                        // O(d), insertion order
//	NeighborIDs(id int) ([]int, error)                       // O(d·log d), unique, ascending
//	Clone() *Graph                                           // O(V+E), deep copy
//
// Concurrency:
//
//	All methods are safe for concurrent use; a single sync.RWMutex guards the
//	vertex catalog, the edge catalog and the adjacency lists.
//
// Errors:
//
//	ErrNegativeVertex  – vertex ID below zero
//	ErrVertexNotFound  – missing vertex
//	ErrEdgeNotFound    – missing edge ID
package core
