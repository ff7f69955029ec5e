// File: api.go
// Role: BuildGraph orchestrator and the Constructor contract.
package builder

import (
	"fmt"

	"github.com/katalvlaran/realtransducer/core"
)

// Constructor adds states and edges to g. Constructors validate parameters
// before mutating and return sentinel errors wrapped with context.
type Constructor func(g *core.Graph) error

// BuildGraph creates a graph and applies cons in order. The first error is
// returned wrapped as "BuildGraph: %w"; no partial cleanup is attempted.
func BuildGraph(cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// edge is one labelled transition in a constructor table.
type edge struct {
	from, to int
	reads    string
	prints   string
	consumes bool
}

// addEdges inserts table in order, tagging failures with method.
func addEdges(g *core.Graph, method string, table []edge) error {
	for _, e := range table {
		_, err := g.AddEdge(e.from, e.to,
			core.WithReads(e.reads),
			core.WithPrints(e.prints),
			core.WithConsumes(e.consumes),
		)
		if err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d): %v: %w", method, e.from, e.to, err, ErrConstructFailed)
		}
	}

	return nil
}
