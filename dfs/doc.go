// Package dfs implements depth-first cycle detection on a directed core.Graph.
//
// What:
//
//   - DetectCycles reports whether the graph, restricted to the edges accepted
//     by an optional edge filter, contains a directed cycle. It uses vertex
//     coloring (White, Gray, Black); every back-edge Gray→Gray closes a cycle,
//     which is recorded in canonical form (minimal rotation, Booth's algorithm)
//     and deduplicated by signature.
//
// Why:
//   - A real transducer must not contain a cycle of edges that all print
//     nothing; the validator runs DetectCycles with a "prints nothing" filter.
//
// Guarantees:
//
//   - has == true iff the filtered graph has a directed cycle.
//   - The returned cycles are those closed by back-edges: every cycle is a real
//     simple cycle, but not every simple cycle of a dense graph is listed.
//   - Output is deterministic: vertices and edges are scanned in order and the
//     cycle list is sorted by signature.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C=#cycles recorded, L=avg cycle length)
//   - Memory: O(V + L_max)
//
// Errors:
//
//   - ErrOptionViolation  nil edge filter
//   - neighbor lookup errors from core are wrapped and propagated
package dfs
