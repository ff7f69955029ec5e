package generator_test

import (
	"context"
	"iter"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/realtransducer/generator"
	"github.com/katalvlaran/realtransducer/transducer"
)

func count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}

	return n
}

func TestBaseGraphs(t *testing.T) {
	assert.Equal(t, 0, count(generator.BaseGraphs(0)))
	assert.Equal(t, 1, count(generator.BaseGraphs(1)))
	// 16 target tuples, minus the 4 where state 0 never leaves itself
	assert.Equal(t, 12, count(generator.BaseGraphs(2)))

	for g := range generator.BaseGraphs(2) {
		assert.Equal(t, 2, g.VertexCount())
		assert.Equal(t, 4, g.EdgeCount())
		// first reachable tuple is (0, 1, 0, 0)
		e := g.Edges()[1]
		assert.Equal(t, 0, e.From)
		assert.Equal(t, 1, e.To)
		reads, _ := e.Attr("reads")
		assert.Equal(t, "1", reads)
		break
	}
}

func TestDecorations(t *testing.T) {
	assert.Equal(t, 1, count(generator.Decorations(0)))
	assert.Equal(t, 0, count(generator.Decorations(-1)))
	assert.Equal(t, 6, count(generator.Decorations(1)))

	var all [][]generator.Decoration
	for d := range generator.Decorations(2) {
		all = append(all, d)
	}
	require.Len(t, all, 36)
	assert.Equal(t, []generator.Decoration{{Prints: "", Consumes: true}, {Prints: "", Consumes: true}}, all[0])
	assert.Equal(t, []generator.Decoration{{Prints: "", Consumes: true}, {Prints: "", Consumes: false}}, all[1])
	assert.Equal(t, []generator.Decoration{{Prints: "1", Consumes: false}, {Prints: "1", Consumes: false}}, all[35])
}

func TestTransducers_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := generator.NewMetrics(reg)
	require.NoError(t, err)

	assert.Equal(t, 10, count(generator.Transducers(1, m)))
	assert.Equal(t, 36.0, testutil.ToFloat64(m.Candidates))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.Accepted))
	assert.Equal(t, 20.0, testutil.ToFloat64(m.Rejected.WithLabelValues(generator.ReasonPrintlessCycle)))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.Rejected.WithLabelValues(generator.ReasonInconsistentCircle)))

	assert.Equal(t, 1746, count(generator.Transducers(2, m)))
	assert.Equal(t, 36.0+15552.0, testutil.ToFloat64(m.Candidates))

	// a second registration of the same names fails
	_, err = generator.NewMetrics(reg)
	assert.Error(t, err)

	// unregistered and nil metrics are usable
	_, err = generator.NewMetrics(nil)
	require.NoError(t, err)
	assert.Equal(t, 10, count(generator.Transducers(1, nil)))
}

func TestReason(t *testing.T) {
	_, err := transducer.New(nil)
	assert.Equal(t, generator.ReasonOther, generator.Reason(err))
	assert.Equal(t, generator.ReasonUnreachable, generator.Reason(transducer.ErrUnreachableState))
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	machines, err := generator.Generate(ctx, generator.WithMaxStates(1))
	require.NoError(t, err)
	require.Len(t, machines, 10)
	for _, a := range machines {
		assert.Equal(t, 1, a.States())
	}

	machines, err = generator.Generate(ctx, generator.WithMaxStates(2), generator.WithLimit(15))
	require.NoError(t, err)
	require.Len(t, machines, 15)
	assert.Equal(t, 1, machines[9].States())
	assert.Equal(t, 2, machines[10].States())

	_, err = generator.Generate(ctx, generator.WithMaxStates(0))
	assert.ErrorIs(t, err, generator.ErrOptionViolation)
	_, err = generator.Generate(ctx, generator.WithLimit(-1))
	assert.ErrorIs(t, err, generator.ErrOptionViolation)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = generator.Generate(canceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClassify(t *testing.T) {
	ctx := context.Background()
	machines, err := generator.Generate(ctx, generator.WithMaxStates(1))
	require.NoError(t, err)

	classes, err := generator.Classify(ctx, machines, generator.WithBits(2), generator.WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, classes, 4)
	assert.Equal(t, []int{0, 1, 3, 4}, classes[0].Members) // constant 0
	assert.Equal(t, []int{2}, classes[1].Members)          // identity
	assert.Equal(t, []int{5}, classes[2].Members)          // flip
	assert.Equal(t, []int{6, 7, 8, 9}, classes[3].Members) // constant 1
	assert.Equal(t, "10[:1:]", classes[2].Behavior[1].String())

	_, err = generator.Classify(ctx, machines, generator.WithWorkers(0))
	assert.ErrorIs(t, err, generator.ErrOptionViolation)
	_, err = generator.Classify(ctx, machines, generator.WithBits(-1))
	assert.ErrorIs(t, err, generator.ErrOptionViolation)
	_, err = generator.Classify(ctx, machines, generator.WithBits(transducer.MaxInputBits+1))
	assert.ErrorIs(t, err, generator.ErrOptionViolation)

	empty, err := generator.Classify(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMinimal(t *testing.T) {
	ctx := context.Background()

	samples, err := generator.Minimal(ctx, generator.WithMaxStates(1), generator.WithBits(2))
	require.NoError(t, err)
	require.Len(t, samples, 4)
	var firsts []string
	for _, s := range samples {
		firsts = append(firsts, s.Behavior[1].String())
	}
	assert.Equal(t, []string{"[:0:]", "01[:0:]", "10[:1:]", "[:1:]"}, firsts)

	samples, err = generator.Minimal(ctx, generator.WithMaxStates(2))
	require.NoError(t, err)
	assert.Len(t, samples, 47)
	for i := range samples {
		for j := i + 1; j < len(samples); j++ {
			assert.False(t, transducer.SameBehavior(samples[i].Behavior, samples[j].Behavior))
		}
	}

	samples, err = generator.Minimal(ctx, generator.WithLimit(2))
	require.NoError(t, err)
	assert.Len(t, samples, 2)
}

// TestBisimilarMachinesAgree checks that bisimilar generated machines
// produce equal outputs on every 8-bit input.
func TestBisimilarMachinesAgree(t *testing.T) {
	machines, err := generator.Generate(context.Background(), generator.WithMaxStates(2), generator.WithLimit(200))
	require.NoError(t, err)

	pairs := 0
	for i, a := range machines {
		for _, b := range machines[i+1:] {
			if !a.IsBisimilarTo(b) {
				continue
			}
			pairs++
			ok, err := transducer.AgreeOn(a, b, 8)
			require.NoError(t, err)
			assert.True(t, ok)
		}
	}
	assert.Positive(t, pairs)
}
