// File: impl_ring.go
// Role: Ring(n), the identity map spread over n states.
package builder

import (
	"fmt"

	"github.com/katalvlaran/realtransducer/core"
)

const (
	methodRing   = "Ring"
	minRingNodes = 1
)

// Ring copies every bit while cycling 0 → 1 → … → n-1 → 0.
// It is bisimilar to Identity for every n ≥ 1.
func Ring(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewStates)
		}
		table := make([]edge, 0, 2*n)
		for i := 0; i < n; i++ {
			next := (i + 1) % n
			table = append(table,
				edge{i, next, "0", "0", true},
				edge{i, next, "1", "1", true},
			)
		}

		return addEdges(g, methodRing, table)
	}
}
