package transducer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/realtransducer/record"
	"github.com/katalvlaran/realtransducer/transducer"
)

// Fixtures in the text record form: "src tgt reads prints consumes", "-" for no output.
const (
	identityText = `1
0 0 0 0 true
0 0 1 1 true
`
	// identity written with two alternating states
	identity2Text = `2
0 1 0 0 true
0 1 1 1 true
1 0 0 0 true
1 0 1 1 true
`
	flipText = `1
0 0 0 1 true
0 0 1 0 true
`
	// every input ends in zeros forever
	zeroText = `3
0 1 0 0 true
0 1 1 0 true
1 2 1 - false
1 2 0 - true
2 0 0 - false
2 2 1 0 false
`
	unreachableText = `2
0 0 0 0 true
0 0 1 1 true
1 1 0 0 true
1 0 1 0 false
`
	printlessText = `2
0 1 0 - false
1 0 0 - true
0 0 1 1 true
1 1 1 1 true
`
	inconsistentText = `3
0 1 0 0 true
0 2 1 1 true
1 1 0 0 true
1 1 1 0 true
2 2 0 1 true
2 2 1 1 true
`
	// x ↦ 2x: drop the first bit, then copy
	doublingText = `2
0 1 0 - true
0 1 1 - true
1 1 0 0 true
1 1 1 1 true
`
)

func mustBuild(t *testing.T, text string) *transducer.Automaton {
	t.Helper()
	rec, err := record.ParseText(text)
	require.NoError(t, err)
	a, err := transducer.FromRecord(rec)
	require.NoError(t, err)

	return a
}

func mustParse(t *testing.T, text string) record.Record {
	t.Helper()
	rec, err := record.ParseText(text)
	require.NoError(t, err)

	return rec
}

func buildErr(t *testing.T, text string) error {
	t.Helper()
	rec, err := record.ParseText(text)
	require.NoError(t, err)
	_, err = transducer.FromRecord(rec)

	return err
}
