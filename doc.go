// Package realtransducer is a toolkit for real transducers: deterministic
// finite machines that read the binary expansion of a point of the circle
// ℝ/ℤ and write the binary expansion of its image.
//
// What is inside:
//
//	periodic/     eventually periodic binary values, canonical form, equality
//	core/         raw directed labelled multigraph, the input to validation
//	dfs/, bfs/    cycle detection and reachability over core graphs
//	transducer/   validation, evaluation and bisimulation of automata
//	record/       text and YAML encodings of a machine
//	builder/      hand-made example machines
//	generator/    exhaustive enumeration and behavior classification
//	store/        BadgerDB persistence of enumerated machines
//	cmd/rtrans/   command line front end
//
// Quick example, the identity map:
//
//	  ┌─ 0/0 ─┐
//	  │       ▼
//	  └────── (0) ◄── 1/1
//
// reads each bit, prints it, consumes it. transducer.New validates the graph;
// Evaluate maps 01[:10:] to 01[:10:].
//
//	go get github.com/katalvlaran/realtransducer
package realtransducer
