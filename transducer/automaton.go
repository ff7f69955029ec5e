package transducer

import (
	"fmt"

	"github.com/katalvlaran/realtransducer/bfs"
	"github.com/katalvlaran/realtransducer/core"
	"github.com/katalvlaran/realtransducer/dfs"
	"github.com/katalvlaran/realtransducer/periodic"
)

// label is the validated content of one raw edge.
type label struct {
	bit      int
	prints   string
	consumes bool
}

// New validates g and returns the Automaton it describes.
// The graph is read, never modified, and not retained.
//
// Steps (each failure aborts with its sentinel error wrapped in context):
//  1. Node set must be 0..n-1.
//  2. Every edge carries reads ∈ {"0","1"}, prints ∈ {"","0","1"}, consumes bool.
//  3. Exactly one outgoing edge per (state, bit).
//  4. No cycle of edges with empty prints.
//  5. Every state reachable from 0.
//  6. Cache loop[state][bit].
//  7. Outputs on 0[:1:] and 1[:0:] are Equal from every state.
//
// An empty graph yields the empty Automaton.
func New(g *core.Graph) (*Automaton, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// 1) contiguous states
	verts := g.Vertices()
	for i, v := range verts {
		if v != i {
			return nil, fmt.Errorf("%w: expected state %d, found %d", ErrNonContiguousNodeSet, i, v)
		}
	}
	n := len(verts)

	// 2) labels
	edges := g.Edges()
	labels := make([]label, len(edges))
	for i, e := range edges {
		l, err := parseLabel(e)
		if err != nil {
			return nil, err
		}
		labels[i] = l
	}

	// 3) determinism and completeness
	a := &Automaton{trans: make([][2]Transition, n)}
	counts := make([][2]int, n)
	for i, e := range edges {
		l := labels[i]
		counts[e.From][l.bit]++
		a.trans[e.From][l.bit] = Transition{Target: e.To, Output: l.prints, Consumes: l.consumes}
	}
	for s := 0; s < n; s++ {
		for b := range Alphabet {
			if counts[s][b] > 1 {
				return nil, fmt.Errorf("%w: state %d has %d edges reading %c", ErrAmbiguousTransition, s, counts[s][b], Alphabet[b])
			}
		}
		for b := range Alphabet {
			if counts[s][b] == 0 {
				return nil, fmt.Errorf("%w: state %d has no edge reading %c", ErrIncompleteTransition, s, Alphabet[b])
			}
		}
	}

	// 4) printless cycles
	has, cycles, err := dfs.DetectCycles(g, dfs.WithEdgeFilter(printsNothing))
	if err != nil {
		return nil, fmt.Errorf("transducer: cycle search: %w", err)
	}
	if has {
		return nil, fmt.Errorf("%w: %v", ErrPrintlessCycle, cycles[0])
	}

	// 5) reachability
	if n > 0 {
		res, err := bfs.BFS(g, 0)
		if err != nil {
			return nil, fmt.Errorf("transducer: reachability: %w", err)
		}
		for s := 0; s < n; s++ {
			if !res.Reached(s) {
				return nil, fmt.Errorf("%w: state %d", ErrUnreachableState, s)
			}
		}
	}

	// 6) loop cache
	a.loops = make([][2]periodic.Value, n)
	for s := 0; s < n; s++ {
		for b := range Alphabet {
			a.loops[s][b] = a.foreverLoop(s, b)
		}
	}

	// 7) circle consistency
	below := periodic.MustNew("0", "1")
	above := periodic.MustNew("1", "0")
	for s := 0; s < n; s++ {
		lo, hi := a.evaluate(below, s), a.evaluate(above, s)
		if !lo.Equal(hi) {
			return nil, fmt.Errorf("%w: state %d maps 0[:1:] to %s and 1[:0:] to %s", ErrInconsistentCircleBehavior, s, lo, hi)
		}
	}

	return a, nil
}

// parseLabel checks the three transducer attributes of e.
func parseLabel(e *core.Edge) (label, error) {
	var l label

	raw, ok := e.Attr(core.AttrReads)
	reads, isString := raw.(string)
	if !ok || !isString || len(reads) != 1 || (reads[0] != periodic.Zero && reads[0] != periodic.One) {
		return l, invalidField(e, core.AttrReads, raw, ok)
	}
	l.bit = bitIndex(reads[0])

	raw, ok = e.Attr(core.AttrPrints)
	prints, isString := raw.(string)
	if !ok || !isString || (prints != "" && prints != "0" && prints != "1") {
		return l, invalidField(e, core.AttrPrints, raw, ok)
	}
	l.prints = prints

	raw, ok = e.Attr(core.AttrConsumes)
	consumes, isBool := raw.(bool)
	if !ok || !isBool {
		return l, invalidField(e, core.AttrConsumes, raw, ok)
	}
	l.consumes = consumes

	return l, nil
}

func invalidField(e *core.Edge, key string, raw interface{}, present bool) error {
	if !present {
		return fmt.Errorf("%w: edge %s (%d→%d) has no %s", ErrMissingOrInvalidField, e.ID, e.From, e.To, key)
	}

	return fmt.Errorf("%w: edge %s (%d→%d) has %s=%#v", ErrMissingOrInvalidField, e.ID, e.From, e.To, key, raw)
}

// printsNothing selects edges with empty output; labels are validated before use.
func printsNothing(e *core.Edge) bool {
	v, _ := e.Attr(core.AttrPrints)
	return v == ""
}

// foreverLoop follows the b-edges from state, ignoring consumption, until a
// state repeats. Outputs before the repeated state form the initial segment,
// the rest the period. The period is nonempty because the b-edges from the
// repeated state form a cycle, and every cycle prints.
func (a *Automaton) foreverLoop(state, b int) periodic.Value {
	pos := make([]int, len(a.trans))
	for i := range pos {
		pos[i] = -1
	}
	var outputs []string
	for cur := state; ; {
		if idx := pos[cur]; idx >= 0 {
			return mustValue(outputs[:idx], outputs[idx:])
		}
		pos[cur] = len(outputs)
		t := a.trans[cur][b]
		outputs = append(outputs, t.Output)
		cur = t.Target
	}
}

// States returns the number of states. A nil Automaton has none.
func (a *Automaton) States() int {
	if a == nil {
		return 0
	}

	return len(a.trans)
}

// Route returns a shortest chain of states leading from state 0 to state,
// both ends included.
func (a *Automaton) Route(state int) ([]int, error) {
	if err := a.checkState(state); err != nil {
		return nil, err
	}
	res, err := bfs.BFS(a.Graph(), 0)
	if err != nil {
		return nil, fmt.Errorf("transducer: route: %w", err)
	}

	return res.PathTo(state)
}

// Transition returns the edge taken from state on bit ('0' or '1').
func (a *Automaton) Transition(state int, bit byte) (Transition, error) {
	if err := a.checkState(state); err != nil {
		return Transition{}, err
	}
	if bit != periodic.Zero && bit != periodic.One {
		return Transition{}, fmt.Errorf("%w: %q", periodic.ErrNonBinaryCharacter, bit)
	}

	return a.trans[state][bitIndex(bit)], nil
}

// Loop returns the cached output of reading bit ('0' or '1') forever from state.
func (a *Automaton) Loop(state int, bit byte) (periodic.Value, error) {
	if err := a.checkState(state); err != nil {
		return periodic.Value{}, err
	}
	if bit != periodic.Zero && bit != periodic.One {
		return periodic.Value{}, fmt.Errorf("%w: %q", periodic.ErrNonBinaryCharacter, bit)
	}

	return a.loops[state][bitIndex(bit)], nil
}

func (a *Automaton) checkState(state int) error {
	if state < 0 || state >= a.States() {
		return fmt.Errorf("%w: %d of %d", ErrUnknownState, state, a.States())
	}

	return nil
}
