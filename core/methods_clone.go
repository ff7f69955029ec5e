// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so AddEdge on the clone continues the same sequence.
package core

// Clone returns a deep copy of the Graph: vertices, edges with their
// attribute maps, insertion order and adjacency.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	clone.nextEdgeID = g.nextEdgeID
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	for _, eid := range g.order {
		e := g.edges[eid]
		attrs := make(map[string]interface{}, len(e.Attrs))
		for k, v := range e.Attrs {
			attrs[k] = v
		}
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Attrs: attrs}
	}
	clone.order = append([]string(nil), g.order...)
	for from, ids := range g.out {
		clone.out[from] = append([]string(nil), ids...)
	}

	return clone
}
