// Package record defines the persisted form of a transducer: a node count
// followed by a list of edges (source, target, reads, prints, consumes).
//
// Two encodings are provided:
//
//   - Text, one item per line:
//
//     # comment lines and blank lines are ignored
//     3                 node count
//     0 1 0 0 true      source target reads prints consumes
//     1 2 1 - false     "-" stands for empty output
//
//   - YAML (gopkg.in/yaml.v3), with unknown fields rejected:
//
//     nodes: 1
//     edges:
//     - {source: 0, target: 0, reads: "0", prints: "0", consumes: true}
//
// The record is a plain carrier: it does not validate transducer semantics.
// transducer.FromRecord applies the full validation pipeline to it.
package record
