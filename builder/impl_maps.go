// File: impl_maps.go
// Role: one- and two-state example maps of the circle.
//
// Every constructor here emits the (state, '0') edge before the
// (state, '1') edge, states in ascending order.
package builder

import (
	"fmt"

	"github.com/katalvlaran/realtransducer/core"
)

const (
	methodIdentity = "Identity"
	methodFlip     = "Flip"
	methodConstant = "Constant"
	methodHalve    = "Halve"
	methodScenario = "Scenario"
)

// Identity copies every bit: x ↦ x.
func Identity() Constructor {
	return func(g *core.Graph) error {
		return addEdges(g, methodIdentity, []edge{
			{0, 0, "0", "0", true},
			{0, 0, "1", "1", true},
		})
	}
}

// Flip complements every bit: x ↦ 1-x.
func Flip() Constructor {
	return func(g *core.Graph) error {
		return addEdges(g, methodFlip, []edge{
			{0, 0, "0", "1", true},
			{0, 0, "1", "0", true},
		})
	}
}

// Constant prints bit forever whatever it reads.
func Constant(bit byte) Constructor {
	return func(g *core.Graph) error {
		if bit != '0' && bit != '1' {
			return fmt.Errorf("%s: bit %q: %w", methodConstant, bit, ErrInvalidBit)
		}
		out := string(bit)

		return addEdges(g, methodConstant, []edge{
			{0, 0, "0", out, true},
			{0, 0, "1", out, true},
		})
	}
}

// Halve prints a leading 0 without consuming, then copies: x ↦ x/2.
func Halve() Constructor {
	return func(g *core.Graph) error {
		return addEdges(g, methodHalve, []edge{
			{0, 1, "0", "0", false},
			{0, 1, "1", "0", false},
			{1, 1, "0", "0", true},
			{1, 1, "1", "1", true},
		})
	}
}

// Scenario is a three-state machine that maps everything to 0. Reading a 0
// from state 1 passes through states 2 and 0 before the bit is consumed, and
// a 1 read from state 2 is never consumed.
func Scenario() Constructor {
	return func(g *core.Graph) error {
		return addEdges(g, methodScenario, []edge{
			{0, 1, "0", "0", true},
			{0, 1, "1", "0", true},
			{1, 2, "0", "", true},
			{1, 2, "1", "", false},
			{2, 0, "0", "", false},
			{2, 2, "1", "0", false},
		})
	}
}
