package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/realtransducer/record"
	"github.com/katalvlaran/realtransducer/store"
)

// run executes one rtrans invocation against s and returns stdout.
func run(t *testing.T, s *store.Store, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	a := &app{stdout: &out, stderr: &errOut, store: s}
	root := newRootCmd(a)
	root.SetArgs(append([]string{"--in-memory", "--log-level", "error"}, args...))
	err := root.Execute()

	return out.String(), err
}

func memStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(store.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestGenerate_StoresAndReports(t *testing.T) {
	s := memStore(t)
	out, err := run(t, s, "generate", "--max-states", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "stored 10 machines as #1..#10")
	assert.Contains(t, out, "rtrans_generator_candidates_total 36")
	assert.Contains(t, out, "rtrans_generator_accepted_total 10")
	assert.Contains(t, out, `rtrans_generator_rejected_total{reason="printless_cycle"} 20`)
	assert.Contains(t, out, `rtrans_generator_rejected_total{reason="inconsistent_circle"} 6`)

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}

func TestQueries(t *testing.T) {
	s := memStore(t)
	_, err := run(t, s, "generate", "--max-states", "1")
	require.NoError(t, err)

	// #3 is the identity, #6 the flip
	out, err := run(t, s, "eval", "3", "01[:10:]")
	require.NoError(t, err)
	assert.Equal(t, "01[:10:] |--> 01[:10:]\n", out)

	out, err = run(t, s, "eval", "6", "0110")
	require.NoError(t, err)
	assert.Equal(t, "011[:0:] |--> 100[:1:]\n", out)

	out, err = run(t, s, "behavior", "6", "--bits", "2")
	require.NoError(t, err)
	assert.Equal(t, "00 |--> [:1:]\n01 |--> 10[:1:]\n10 |--> 0[:1:]\n11 |--> 00[:1:]\n", out)

	out, err = run(t, s, "bisim", "3", "6")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, err = run(t, s, "show", "3")
	require.NoError(t, err)
	assert.Equal(t, "1\n0 0 0 0 true\n0 0 1 1 true\n", out)

	out, err = run(t, s, "show", "3", "--routes")
	require.NoError(t, err)
	assert.Equal(t, "0: 0\n", out)

	out, err = run(t, s, "show", "3", "--yaml")
	require.NoError(t, err)
	rec, err := record.UnmarshalYAML([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 1, rec.NodeCount)

	out, err = run(t, s, "classify", "--bits", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "behavior 00: #1 #2 #4 #5\n")
	assert.Contains(t, out, "behavior 01: #3\n")
	assert.True(t, strings.HasSuffix(out, "10 machines, 4 behaviors\n"))

	_, err = run(t, s, "eval", "99", "0")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = run(t, s, "eval", "x", "0")
	assert.Error(t, err)
	_, err = run(t, s, "eval", "3", "0[:2:]")
	assert.Error(t, err)
}

func TestMinimalAndCatalog(t *testing.T) {
	s := memStore(t)
	out, err := run(t, s, "minimal", "--max-states", "1", "--bits", "1", "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "minimal 000 (#1)\n1\n0 0 0 0 true\n0 0 1 0 true\n")
	assert.Contains(t, out, "minimal 003 (#4)\n")
	assert.Contains(t, out, "1 |--> 0[:1:]\n")

	out, err = run(t, s, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "halve\n")

	out, err = run(t, s, "catalog", "ring3")
	require.NoError(t, err)
	assert.Equal(t, "stored ring3 as #5\n", out)

	out, err = run(t, s, "show", "5", "--routes")
	require.NoError(t, err)
	assert.Equal(t, "0: 0\n1: 0 -> 1\n2: 0 -> 1 -> 2\n", out)

	// the stored ring is bisimilar to the stored identity, minimal 001
	out, err = run(t, s, "bisim", "2", "5")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	_, err = run(t, s, "catalog", "nope")
	assert.Error(t, err)
}

func TestRoot_InvalidConfig(t *testing.T) {
	_, err := run(t, memStore(t), "--log-level", "loud", "catalog")
	assert.ErrorContains(t, err, "invalid config")
}

func TestFlags_OutOfBounds(t *testing.T) {
	s := memStore(t)
	cases := [][]string{
		{"generate", "--max-states", "5"},
		{"minimal", "--max-states", "9"},
		{"minimal", "--max-states", "1", "--bits", "63"},
		{"behavior", "1", "--bits", "64"},
		{"classify", "--bits", "17"},
	}
	for _, args := range cases {
		_, err := run(t, s, args...)
		assert.ErrorContains(t, err, "invalid config", strings.Join(args, " "))
	}

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
