// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrNegativeVertex for id < 0.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeVertex, id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether the vertex exists.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V·log V)
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Ints(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
