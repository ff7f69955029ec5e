package transducer

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/realtransducer/periodic"
)

// phase is a (state, position within the input period) pair.
type phase struct {
	state int
	pos   int
}

// Step reads one input bit ('0' or '1') from state.
//
// It follows the (state, bit) edge, collecting output. If the edge consumes
// the bit, the collected output is returned as a FiniteChunk with the state
// entered. Otherwise it repeats from the new state with the same bit; if a
// state repeats first, the bit read forever determines the rest of the
// output and a Saturated value is returned.
func (a *Automaton) Step(state int, bit byte) (Chunk, int, error) {
	if err := a.checkState(state); err != nil {
		return nil, 0, err
	}
	if bit != periodic.Zero && bit != periodic.One {
		return nil, 0, fmt.Errorf("%w: %q", periodic.ErrNonBinaryCharacter, bit)
	}
	c, next := a.step(state, bitIndex(bit))

	return c, next, nil
}

func (a *Automaton) step(state, b int) (Chunk, int) {
	var visited []int
	var outputs []string
	for cur := state; ; {
		if idx := slices.Index(visited, cur); idx >= 0 {
			return Saturated{Value: mustValue(outputs[:idx], outputs[idx:])}, cur
		}
		visited = append(visited, cur)
		t := a.trans[cur][b]
		outputs = append(outputs, t.Output)
		cur = t.Target
		if t.Consumes {
			return FiniteChunk(strings.Join(outputs, "")), cur
		}
	}
}

// ReadFinite feeds the binary word bits to the automaton from state.
//
// It returns FiniteChunk with the concatenated output and the final state when
// every bit is consumed, or, at the first saturating bit, the Saturated value
// prefixed with the output accumulated so far.
func (a *Automaton) ReadFinite(bits string, state int) (Chunk, int, error) {
	if err := a.checkState(state); err != nil {
		return nil, 0, err
	}
	if _, err := periodic.New(bits, string(periodic.Zero)); err != nil {
		return nil, 0, err
	}
	c, next := a.readFinite(bits, state)

	return c, next, nil
}

func (a *Automaton) readFinite(bits string, state int) (Chunk, int) {
	var out strings.Builder
	for i := 0; i < len(bits); i++ {
		c, next := a.step(state, bitIndex(bits[i]))
		switch c := c.(type) {
		case Saturated:
			return Saturated{Value: mustPrepend(c.Value, out.String())}, next
		case FiniteChunk:
			out.WriteString(string(c))
		}
		state = next
	}

	return FiniteChunk(out.String()), state
}

// Evaluate runs the automaton on input from start and returns the output.
// Returns ErrUnknownState if start is not a state.
func (a *Automaton) Evaluate(input periodic.Value, start int) (periodic.Value, error) {
	if err := a.checkState(start); err != nil {
		return periodic.Value{}, err
	}
	if input.Period() == "" {
		return periodic.Value{}, periodic.ErrEmptyPeriod
	}

	return a.evaluate(input, start), nil
}

// EvaluateString evaluates the finite word s followed by zeros forever, s[:0:].
func (a *Automaton) EvaluateString(s string, start int) (periodic.Value, error) {
	input, err := periodic.New(s, string(periodic.Zero))
	if err != nil {
		return periodic.Value{}, err
	}

	return a.Evaluate(input, start)
}

// evaluate reads input.initial, then cycles through input.period tracking
// (state, position) pairs. The first repeated pair closes the output period:
// outputs since its first occurrence repeat forever. The pair space has at
// most States()·|period| elements, which bounds the loop.
func (a *Automaton) evaluate(input periodic.Value, start int) periodic.Value {
	head, state := a.readFinite(input.Initial(), start)
	var prefix string
	switch c := head.(type) {
	case Saturated:
		return c.Value
	case FiniteChunk:
		prefix = string(c)
	}

	period := input.Period()
	seen := make(map[phase]int)
	var blocks []string
	for pos := 0; ; pos = (pos + 1) % len(period) {
		key := phase{state: state, pos: pos}
		if idx, ok := seen[key]; ok {
			return mustValue(append([]string{prefix}, blocks[:idx]...), blocks[idx:])
		}
		seen[key] = len(blocks)

		c, next := a.step(state, bitIndex(period[pos]))
		switch c := c.(type) {
		case Saturated:
			return mustPrepend(c.Value, prefix+strings.Join(blocks, ""))
		case FiniteChunk:
			blocks = append(blocks, string(c))
		}
		state = next
	}
}

// Inputs returns every binary word of length bits in lexicographic order.
// bits must lie in 0..MaxInputBits.
func Inputs(bits int) ([]string, error) {
	if bits < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, bits)
	}
	if bits > MaxInputBits {
		return nil, fmt.Errorf("%w: %d > %d", ErrInputTooLong, bits, MaxInputBits)
	}
	words := make([]string, 0, 1<<bits)
	for i := uint64(0); i < uint64(1)<<bits; i++ {
		w := strconv.FormatUint(i, 2)
		if bits == 0 {
			w = ""
		}
		words = append(words, strings.Repeat("0", bits-len(w))+w)
	}

	return words, nil
}

// InitialBehavior evaluates every binary word of length bits, in
// lexicographic order, from state 0. The result fingerprints the automaton.
func (a *Automaton) InitialBehavior(bits int) ([]periodic.Value, error) {
	words, err := Inputs(bits)
	if err != nil {
		return nil, err
	}
	if err = a.checkState(0); err != nil {
		return nil, err
	}

	behavior := make([]periodic.Value, len(words))
	for i, w := range words {
		behavior[i] = a.evaluate(periodic.MustNew(w, string(periodic.Zero)), 0)
	}

	return behavior, nil
}

// SameBehavior reports whether two behaviors are elementwise Equal.
func SameBehavior(x, y []periodic.Value) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !x[i].Equal(y[i]) {
			return false
		}
	}

	return true
}

// AgreeOn reports whether a and b produce Equal outputs on every binary word
// of length bits, read from state 0.
func AgreeOn(a, b *Automaton, bits int) (bool, error) {
	ba, err := a.InitialBehavior(bits)
	if err != nil {
		return false, err
	}
	bb, err := b.InitialBehavior(bits)
	if err != nil {
		return false, err
	}

	return SameBehavior(ba, bb), nil
}

// mustValue joins output blocks into a Value. Validated automata always
// produce binary blocks and a nonempty period.
func mustValue(initial, period []string) periodic.Value {
	v, err := periodic.New(strings.Join(initial, ""), strings.Join(period, ""))
	if err != nil {
		panic(fmt.Sprintf("transducer: invariant violated: %v", err))
	}

	return v
}

func mustPrepend(v periodic.Value, prefix string) periodic.Value {
	out, err := v.Prepend(prefix)
	if err != nil {
		panic(fmt.Sprintf("transducer: invariant violated: %v", err))
	}

	return out
}
