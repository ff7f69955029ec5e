// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge, SetEdgeAttrs, Edges, OutEdges, NeighborIDs, EdgeCount.
// Determinism:
//   - Edges() and OutEdges() return edges in insertion order.
//   - Edge IDs are monotonic ("e" + decimal).
package core

import (
	"fmt"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix of edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new directed edge from→to and applies opts to it.
// Missing endpoints are added. Parallel edges and self-loops are allowed.
//
// Steps:
//  1. Reject negative endpoints.
//  2. Build the Edge and apply opts.
//  3. Under lock: register endpoints, store the edge, link adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, opts ...EdgeOption) (string, error) {
	if from < 0 || to < 0 {
		return "", fmt.Errorf("%w: edge %d→%d", ErrNegativeVertex, from, to)
	}

	e := &Edge{From: from, To: to, Attrs: make(map[string]interface{}, 3)}
	for _, opt := range opts {
		opt(e)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	e.ID = nextEdgeID(g)
	g.edges[e.ID] = e
	g.order = append(g.order, e.ID)
	g.out[from] = append(g.out[from], e.ID)

	return e.ID, nil
}

// SetEdgeAttrs applies opts to the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(len(opts))
func (g *Graph) SetEdgeAttrs(id string, opts ...EdgeOption) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, id)
	}
	for _, opt := range opts {
		opt(e)
	}

	return nil
}

// Edges returns every edge in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	res := make([]*Edge, 0, len(g.order))
	for _, eid := range g.order {
		res = append(res, g.edges[eid])
	}

	return res
}

// OutEdges returns the edges leaving id, in insertion order.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(deg⁺(id))
func (g *Graph) OutEdges(id int) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	ids := g.out[id]
	res := make([]*Edge, 0, len(ids))
	for _, eid := range ids {
		res = append(res, g.edges[eid])
	}

	return res, nil
}

// NeighborIDs returns the distinct targets of edges leaving id, ascending.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(d·log d)
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	edges, err := g.OutEdges(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(edges))
	res := make([]int, 0, len(edges))
	for _, e := range edges {
		if _, dup := seen[e.To]; dup {
			continue
		}
		seen[e.To] = struct{}{}
		res = append(res, e.To)
	}
	sort.Ints(res)

	return res, nil
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next textual edge ID. Caller must hold g.mu.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
