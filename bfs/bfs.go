package bfs

import (
	"fmt"

	"github.com/katalvlaran/realtransducer/core"
)

// queueItem is one pending state and the depth it was discovered at.
type queueItem struct {
	id    int
	depth int
}

// walker holds the mutable state of one search.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// BFS searches g breadth-first from startID, following edges forward only.
//
// Parameters:
//   - g:       graph to search; parallel edges and self-loops are fine.
//   - startID: state at depth 0.
//   - opts:    WithOnVisit, WithMaxDepth.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound, or the
// wrapped error of a failing OnVisit hook. On a hook error the partial
// result is returned alongside it.
func BFS(g *core.Graph, startID int, opts ...Option) (*BFSResult, error) {
	// 1) input guards
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) fold options; the first bad one aborts
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3) start must exist
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, startID)
	}

	// 4) size buffers by vertex count
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// 5) seed with the root, which has no parent
	w.enqueue(startID, 0, startID, false)

	// 6) drain
	return w.res, w.loop()
}

// enqueue records id as discovered at depth d, links it to parent when
// hasParent is set, and appends it to the queue.
func (w *walker) enqueue(id, d, parent int, hasParent bool) {
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop drains the queue in FIFO order.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// pop front
		item := w.queue[0]
		w.queue = w.queue[1:]

		// visit: record order, then run the hook
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		// expand
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors discovers the successors of item. Parallel edges to
// the same target collapse into one neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	// depth cap applies to the children, not to item itself
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	nbrs, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	for _, nbr := range nbrs {
		// first discovery wins; that is what makes Depth minimal
		if w.res.Reached(nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id, true)
	}

	return nil
}
