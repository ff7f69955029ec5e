// Package builder assembles hand-made example transducer graphs.
//
// What:
//
//   - BuildGraph(cons...) creates a core.Graph and applies each Constructor
//     in order. Constructors add labelled edges (reads, prints, consumes).
//   - Identity, Flip, Constant, Halve and Ring are ready-made maps of the
//     circle; Scenario is a three-state machine whose zero input never
//     stops being read.
//   - Named/Names expose the catalogue by name for the command line.
//
// The graphs are raw: pass them to transducer.New to validate.
//
// Determinism:
//
//	Same constructors in the same order yield identical graphs,
//	including edge IDs.
package builder
