package generator

import (
	"context"
	"iter"

	"github.com/katalvlaran/realtransducer/bfs"
	"github.com/katalvlaran/realtransducer/core"
	"github.com/katalvlaran/realtransducer/transducer"
)

// BaseGraphs yields every n-state graph with exactly one edge per
// (state, bit) slot, in lexicographic order of the target tuple
// (slot 2·state+bit), skipping graphs with a state unreachable from 0.
// Edges carry only the reads label. n < 1 yields nothing.
func BaseGraphs(n int) iter.Seq[*core.Graph] {
	return func(yield func(*core.Graph) bool) {
		if n < 1 {
			return
		}
		targets := make([]int, 2*n)
		for {
			g := baseGraph(n, targets)
			if allReachable(g, n) && !yield(g) {
				return
			}
			if !nextTuple(targets, n) {
				return
			}
		}
	}
}

// Decorations yields every labelling of m edges, first edge most
// significant. Each yielded slice is fresh. m < 0 yields nothing;
// m == 0 yields one empty labelling.
func Decorations(m int) iter.Seq[[]Decoration] {
	choices := make([]Decoration, 0, 2*len(Outputs))
	for _, p := range Outputs {
		choices = append(choices, Decoration{Prints: p, Consumes: true}, Decoration{Prints: p, Consumes: false})
	}

	return func(yield func([]Decoration) bool) {
		if m < 0 {
			return
		}
		idx := make([]int, m)
		for {
			dec := make([]Decoration, m)
			for i, c := range idx {
				dec[i] = choices[c]
			}
			if !yield(dec) {
				return
			}
			if !nextTuple(idx, len(choices)) {
				return
			}
		}
	}
}

// Transducers yields, for each base graph of n states and each decoration
// of its edges, the automaton built from the decorated graph when it
// validates. Every candidate outcome is recorded on m, which may be nil.
func Transducers(n int, m *Metrics) iter.Seq[*transducer.Automaton] {
	return func(yield func(*transducer.Automaton) bool) {
		for base := range BaseGraphs(n) {
			for dec := range Decorations(base.EdgeCount()) {
				a, err := transducer.New(decorate(base, dec))
				m.observe(err)
				if err != nil {
					continue
				}
				if !yield(a) {
					return
				}
			}
		}
	}
}

// Generate collects valid machines of sizes 1..MaxStates in enumeration
// order, stopping after Limit machines when Limit > 0.
func Generate(ctx context.Context, opts ...Option) ([]*transducer.Automaton, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	var out []*transducer.Automaton
	for size := 1; size <= o.MaxStates; size++ {
		found := 0
		for a := range Transducers(size, o.Metrics) {
			if err = ctx.Err(); err != nil {
				return out, err
			}
			out = append(out, a)
			found++
			if o.Limit > 0 && len(out) >= o.Limit {
				o.Logger.Debug("generator: limit reached", "size", size, "found", found, "total", len(out))
				return out, nil
			}
		}
		o.Logger.Debug("generator: size done", "size", size, "found", found, "total", len(out))
	}

	return out, nil
}

func baseGraph(n int, targets []int) *core.Graph {
	g := core.NewGraph()
	for s := 0; s < n; s++ {
		_ = g.AddVertex(s)
	}
	for slot, t := range targets {
		_, _ = g.AddEdge(slot/2, t, core.WithReads(string(transducer.Alphabet[slot%2])))
	}

	return g
}

func allReachable(g *core.Graph, n int) bool {
	// any reachable state is at most n-1 edges from 0
	visited := 0
	_, err := bfs.BFS(g, 0,
		bfs.WithMaxDepth(max(n-1, 0)),
		bfs.WithOnVisit(func(int, int) error {
			visited++
			return nil
		}),
	)

	return err == nil && visited == n
}

// decorate clones base and labels its edges, in insertion order, with dec.
func decorate(base *core.Graph, dec []Decoration) *core.Graph {
	g := base.Clone()
	for i, e := range g.Edges() {
		_ = g.SetEdgeAttrs(e.ID, core.WithPrints(dec[i].Prints), core.WithConsumes(dec[i].Consumes))
	}

	return g
}

// nextTuple advances digits as a base-radix counter, last digit fastest.
// It reports false after the last tuple.
func nextTuple(digits []int, radix int) bool {
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i]++
		if digits[i] < radix {
			return true
		}
		digits[i] = 0
	}

	return false
}
