package transducer

import (
	"fmt"

	"github.com/katalvlaran/realtransducer/core"
	"github.com/katalvlaran/realtransducer/record"
)

// FromRecord builds a raw graph with states 0..nodeCount-1 and the given
// edges, then validates it with New. There is no trusted path: a record
// goes through exactly the same checks as a hand-built graph.
func FromRecord(rec record.Record) (*Automaton, error) {
	if rec.NodeCount < 0 {
		return nil, fmt.Errorf("%w: node count %d", ErrNonContiguousNodeSet, rec.NodeCount)
	}

	g := core.NewGraph()
	for s := 0; s < rec.NodeCount; s++ {
		if err := g.AddVertex(s); err != nil {
			return nil, fmt.Errorf("transducer: record state %d: %w", s, err)
		}
	}
	for i, e := range rec.Edges {
		opts := []core.EdgeOption{core.WithReads(e.Reads), core.WithPrints(e.Prints)}
		if e.Consumes != nil {
			opts = append(opts, core.WithConsumes(*e.Consumes))
		}
		if _, err := g.AddEdge(e.Source, e.Target, opts...); err != nil {
			return nil, fmt.Errorf("%w: record edge %d: %w", ErrNonContiguousNodeSet, i, err)
		}
	}

	return New(g)
}

// Record returns the persisted form of a, one edge per (state, bit) in
// ascending order.
func (a *Automaton) Record() record.Record {
	rec := record.Record{NodeCount: a.States()}
	for s := 0; s < a.States(); s++ {
		for b, bit := range Alphabet {
			t := a.trans[s][b]
			rec.Edges = append(rec.Edges, record.Edge{
				Source:   s,
				Target:   t.Target,
				Reads:    string(bit),
				Prints:   t.Output,
				Consumes: record.Bool(t.Consumes),
			})
		}
	}

	return rec
}

// Graph returns a fresh raw graph equivalent to a.
func (a *Automaton) Graph() *core.Graph {
	g := core.NewGraph()
	for s := 0; s < a.States(); s++ {
		_ = g.AddVertex(s)
	}
	for s := 0; s < a.States(); s++ {
		for b, bit := range Alphabet {
			t := a.trans[s][b]
			_, _ = g.AddEdge(s, t.Target, core.WithReads(string(bit)), core.WithPrints(t.Output), core.WithConsumes(t.Consumes))
		}
	}

	return g
}
