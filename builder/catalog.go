// File: catalog.go
// Role: name → Constructor lookup for the command line.
package builder

import (
	"fmt"
	"sort"
)

var catalog = map[string]func() Constructor{
	"identity": Identity,
	"flip":     Flip,
	"zero":     func() Constructor { return Constant('0') },
	"one":      func() Constructor { return Constant('1') },
	"halve":    Halve,
	"scenario": Scenario,
	"ring3":    func() Constructor { return Ring(3) },
}

// Names lists the catalogue in ascending order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Named returns the constructor registered under name.
func Named(name string) (Constructor, error) {
	mk, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}

	return mk(), nil
}
