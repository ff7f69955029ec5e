package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/realtransducer/core"
)

// search holds the mutable state of one DetectCycles run.
type search struct {
	graph  *core.Graph
	filter func(e *core.Edge) bool
	state  map[int]int         // White/Gray/Black per vertex
	path   []int               // current DFS path, root first
	seen   map[string]struct{} // canonical cycle signatures
	cycles [][]int             // distinct cycles, closed (first == last)
}

// DetectCycles inspects g, restricted to edges passing the configured filter,
// for directed cycles.
//
// Parameters:
//   - g:    graph to search; self-loops count as cycles of length one.
//   - opts: WithEdgeFilter.
//
// Returns (true, cycles, nil) if any cycle is found, (false, nil, nil) if
// none, or ErrOptionViolation for a bad option. A nil graph is cycle-free.
// Each cycle is closed and starts at its smallest vertex.
func DetectCycles(g *core.Graph, opts ...Option) (bool, [][]int, error) {
	// 1) nil graph has no cycles
	if g == nil {
		return false, nil, nil
	}

	// 2) fold options; the first bad one aborts
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return false, nil, o.err
	}

	// 3) all vertices start White
	verts := g.Vertices() // ascending
	s := &search{
		graph:  g,
		filter: o.FilterEdge,
		state:  make(map[int]int, len(verts)),
		path:   make([]int, 0, len(verts)),
		seen:   make(map[string]struct{}),
	}

	// 4) one DFS tree per still-White vertex
	for _, v := range verts {
		if s.state[v] != White {
			continue
		}
		if err := s.visit(v); err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
		}
	}

	// 5) sort by signature so callers see a stable first cycle
	sort.Slice(s.cycles, func(i, j int) bool {
		return JoinSig(s.cycles[i]) < JoinSig(s.cycles[j])
	})

	// 6) report
	if len(s.cycles) == 0 {
		return false, nil, nil
	}

	return true, s.cycles, nil
}

// visit runs the recursive DFS from id and records every cycle closed by a
// back-edge. Returns an error only if id has vanished from the graph.
func (s *search) visit(id int) error {
	// 1) enter: Gray and on the path
	s.state[id] = Gray
	s.path = append(s.path, id)

	// 2) outgoing edges in insertion order
	edges, err := s.graph.OutEdges(id)
	if err != nil {
		return fmt.Errorf("OutEdges(%d): %w", id, err)
	}

	for _, e := range edges {
		// 3) skip edges the caller excluded
		if !s.filter(e) {
			continue
		}
		switch s.state[e.To] {
		case White:
			// tree edge: descend
			if err = s.visit(e.To); err != nil {
				return err
			}
		case Gray:
			// back-edge: e.To is on the current path
			s.record(e.To)
		}
		// Black: finished, so it cannot reach the current path
	}

	// 4) backtrack
	s.path = s.path[:len(s.path)-1]
	s.state[id] = Black

	return nil
}

// record cuts the cycle from start to the top of the path, rotates it to
// its canonical form and keeps it unless an equal cycle was seen.
func (s *search) record(start int) {
	// 1) copy the path suffix; path keeps growing after we return
	idx := IndexOf(s.path, start)
	base := append([]int(nil), s.path[idx:]...)

	// 2) canonical rotation, closed by repeating the head
	rot := MinimalRotation(base)
	closed := append(rot, rot[0])

	// 3) dedup by signature
	sig := JoinSig(closed)
	if _, exists := s.seen[sig]; exists {
		return
	}
	s.seen[sig] = struct{}{}
	s.cycles = append(s.cycles, closed)
}
