// Package bfs provides breadth-first search over a directed core.Graph,
// returning unweighted distances, parent links and visit order.
//
// BFS explores states in increasing distance from a start state, following
// outgoing edges only, with an optional visit hook and depth limit.
// It backs the reachability check and the shortest routes of a transducer,
// and the base-graph filter of the generator.
//
// Complexity: Time O(V + E), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start state not in graph
//   - ErrOptionViolation      invalid Option (e.g. negative depth)
//   - ErrNoPath               PathTo on a state that was not reached
//   - hook errors             propagated from OnVisit
package bfs
