// Package generator enumerates real transducers exhaustively and classifies
// them by behavior.
//
// What:
//
//   - BaseGraphs(n) yields every n-state graph with one edge per
//     (state, bit) slot, in lexicographic order of target tuples, keeping
//     those in which every state is reachable from state 0.
//   - Decorations(m) yields every assignment of (prints, consumes) to m edges,
//     prints ∈ {"", "0", "1"} and consumes ∈ {true, false}.
//   - Transducers(n, metrics) decorates each base graph and keeps the
//     candidates that transducer.New accepts.
//   - Generate collects machines of sizes 1..MaxStates up to Limit.
//   - Classify groups machines by their initial behavior; Minimal keeps the
//     first machine of each distinct behavior, smallest sizes first.
//
// Cost:
//
//	An n-state size has n^(2n) base graphs and 6^(2n) decorations each:
//	36 candidates for n=1, 15552 for n=2, about 3.4·10⁷ for n=3.
//
// Observability:
//
//	Metrics counts candidates, accepted machines and rejections by reason on
//	a caller-supplied prometheus.Registerer. An optional *slog.Logger
//	receives per-size progress at Debug level.
package generator
