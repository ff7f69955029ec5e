package transducer

// statePair relates a state of the left automaton to a state of the right one.
type statePair struct {
	left, right int
}

// IsBisimilarTo reports whether a and other are bisimilar from their start states.
func (a *Automaton) IsBisimilarTo(other *Automaton) bool {
	return Bisimilar(a, other)
}

// Bisimilar decides behavioral equivalence of a and b by breadth-first
// relational closure from the pair (0, 0).
//
// For each pair taken from the frontier, both states must have Equal loop
// values for both bits, and for each bit their transitions must agree on
// Consumes and Output. The successor pair per bit joins the frontier unless
// already verified or queued. Any disagreement ends the search with false.
//
// Two empty automata are bisimilar; an empty and a nonempty one are not.
// A nil Automaton counts as empty.
//
// Complexity: O(Va·Vb) pairs, O(1) work per pair besides value comparison.
func Bisimilar(a, b *Automaton) bool {
	na, nb := a.States(), b.States()
	if na == 0 || nb == 0 {
		return na == 0 && nb == 0
	}

	start := statePair{0, 0}
	frontier := []statePair{start}
	known := map[statePair]struct{}{start: {}} // verified or queued
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]

		for bit := range Alphabet {
			if !a.loops[cur.left][bit].Equal(b.loops[cur.right][bit]) {
				return false
			}
		}
		for bit := range Alphabet {
			ta, tb := a.trans[cur.left][bit], b.trans[cur.right][bit]
			if ta.Consumes != tb.Consumes || ta.Output != tb.Output {
				return false
			}
			next := statePair{ta.Target, tb.Target}
			if _, ok := known[next]; !ok {
				known[next] = struct{}{}
				frontier = append(frontier, next)
			}
		}
	}

	return true
}
