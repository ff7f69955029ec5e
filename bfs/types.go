package bfs

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound means the start state is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil means a nil *core.Graph was passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation wraps every rejected Option.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a state the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option mutates BFSOptions. A bad argument is remembered and reported
// by BFS as ErrOptionViolation before any state is visited.
type Option func(*BFSOptions)

// BFSOptions tunes a single BFS run.
type BFSOptions struct {
	// OnVisit runs once per dequeued state with its depth.
	// A non-nil return stops the search and is wrapped into BFS's error.
	OnVisit func(id int, depth int) error

	// MaxDepth caps how far from the start the search expands.
	// Zero means unbounded.
	MaxDepth int

	err error // first rejected option
}

// DefaultOptions: unbounded depth and a visit hook that does nothing.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithOnVisit installs fn as the visit hook. A nil fn keeps the default.
func WithOnVisit(fn func(id int, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn == nil {
			return
		}
		o.OnVisit = fn
	}
}

// WithMaxDepth bounds the search to states at most d edges from the start.
//
//	d  > 0  expand up to depth d
//	d == 0  unbounded
//	d  < 0  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult is what one search discovered.
//
//	Order   states in the order they were dequeued
//	Depth   edge distance from the start, one entry per reached state
//	Parent  BFS-tree predecessor; the start has no entry
type BFSResult struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// Reached reports whether id was discovered.
func (r *BFSResult) Reached(id int) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo walks Parent links back from dest and returns the states from the
// start to dest inclusive, a shortest path in edge count.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: to %d", ErrNoPath, dest)
	}

	// 1) collect dest, parent(dest), ... up to the start
	path := make([]int, 0, r.Depth[dest]+1)
	cur := dest
	for {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}

	// 2) flip into start-first order
	slices.Reverse(path)

	return path, nil
}
