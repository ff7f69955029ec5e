package periodic_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/realtransducer/periodic"
)

// binaryWords returns every binary word of length 0..maxLen in lexicographic order per length.
func binaryWords(maxLen int) []string {
	words := []string{""}
	layer := []string{""}
	for l := 1; l <= maxLen; l++ {
		next := make([]string, 0, 2*len(layer))
		for _, w := range layer {
			next = append(next, w+"0", w+"1")
		}
		words = append(words, next...)
		layer = next
	}

	return words
}

// rawPrefix materializes initial ⧺ period^ω without normalization.
func rawPrefix(initial, period string, n int) string {
	s := initial
	for len(s) < n {
		s += period
	}

	return s[:n]
}

func TestNew_Errors(t *testing.T) {
	_, err := periodic.New("", "")
	assert.ErrorIs(t, err, periodic.ErrEmptyPeriod)

	_, err = periodic.New("0", "")
	assert.ErrorIs(t, err, periodic.ErrEmptyPeriod)

	_, err = periodic.New("2", "0")
	assert.ErrorIs(t, err, periodic.ErrNonBinaryCharacter)

	_, err = periodic.New("0", "1a")
	assert.ErrorIs(t, err, periodic.ErrNonBinaryCharacter)

	assert.Panics(t, func() { periodic.MustNew("", "") })
}

func TestNew_CanonicalForms(t *testing.T) {
	cases := []struct {
		initial, period string
		want            string
	}{
		{"", "0101", "[:01:]"},         // period shrinks to primitive root
		{"", "010", "[:010:]"},         // already primitive
		{"", "000", "[:0:]"},           // constant
		{"0101", "01", "[:01:]"},       // initial strips to nothing
		{"1101", "01", "1[:10:]"},      // strip, then rotate once
		{"1", "01", "[:10:]"},          // rotate into the period
		{"0", "1", "0[:1:]"},           // nothing to do
		{"1", "0", "1[:0:]"},           // nothing to do
		{"10", "0", "1[:0:]"},          // trailing zero absorbed
		{"0110", "0", "011[:0:]"},      // finite word with zero tail
		{"00111", "0111", "0[:0111:]"}, // one trailing copy stripped
	}
	for _, tc := range cases {
		v, err := periodic.New(tc.initial, tc.period)
		require.NoError(t, err)
		assert.Equal(t, tc.want, v.String(), "New(%q, %q)", tc.initial, tc.period)
	}
}

// TestNew_Invariants checks canonical-form invariants, idempotence and sequence
// preservation over every (initial, period) pair up to length 4.
func TestNew_Invariants(t *testing.T) {
	words := binaryWords(4)
	for _, initial := range words {
		for _, period := range words[1:] {
			v := periodic.MustNew(initial, period)
			p, i := v.Period(), v.Initial()

			// period is primitive
			for k := 1; k < len(p); k++ {
				if len(p)%k == 0 {
					assert.NotEqual(t, p, strings.Repeat(p[:k], len(p)/k), "%s not primitive", v)
				}
			}
			// initial does not end with period
			assert.False(t, strings.HasSuffix(i, p), "%s ends with its period", v)
			// boundary pushed left
			if len(i) > 0 {
				assert.NotEqual(t, i[len(i)-1], p[len(p)-1], "%s boundary not rotated", v)
			}

			// idempotence
			assert.Equal(t, v, periodic.MustNew(i, p))

			// same infinite sequence
			assert.Equal(t, rawPrefix(initial, period, 24), v.Materialize(24), "%q/%q", initial, period)
		}
	}
}

// TestNew_RotationInvariance moves the boundary one bit to the right and back.
func TestNew_RotationInvariance(t *testing.T) {
	words := binaryWords(4)
	for _, initial := range words {
		for _, period := range words[1:] {
			v := periodic.MustNew(initial, period)
			p := v.Period()
			for r := 0; r < len(p); r++ {
				rotated := periodic.MustNew(v.Initial()+p[:r], p[r:]+p[:r])
				assert.Equal(t, v, rotated, "rotation %d of %s", r, v)
			}
		}
	}
}

func TestEqual(t *testing.T) {
	a := periodic.MustNew("0", "1")
	b := periodic.MustNew("1", "0")
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	c := periodic.MustNew("10", "1")
	d := periodic.MustNew("11", "0")
	assert.True(t, c.Equal(d))
	assert.True(t, d.Equal(c))

	// prefixes differ before the last bit
	assert.False(t, periodic.MustNew("00", "1").Equal(periodic.MustNew("11", "0")))
	// lengths differ
	assert.False(t, periodic.MustNew("0", "1").Equal(periodic.MustNew("", "1")))
	// both purely periodic
	zero, one := periodic.MustNew("", "0"), periodic.MustNew("", "1")
	assert.False(t, zero.Equal(one))
	assert.True(t, zero.Equal(periodic.MustNew("0000", "00")))
}

func TestEqualInS1(t *testing.T) {
	zero, one := periodic.MustNew("", "0"), periodic.MustNew("", "1")
	assert.True(t, zero.EqualInS1(one))
	assert.True(t, one.EqualInS1(zero))
	assert.False(t, zero.EqualInS1(periodic.MustNew("", "01")))
	assert.True(t, periodic.MustNew("0", "1").EqualInS1(periodic.MustNew("1", "0")))

	// reflexive, symmetric, and coarser than Equal
	words := binaryWords(3)
	var values []periodic.Value
	for _, initial := range words {
		for _, period := range words[1:] {
			values = append(values, periodic.MustNew(initial, period))
		}
	}
	for _, x := range values {
		assert.True(t, x.Equal(x))
		assert.True(t, x.EqualInS1(x))
		for _, y := range values {
			assert.Equal(t, x.Equal(y), y.Equal(x), "%s vs %s", x, y)
			assert.Equal(t, x.EqualInS1(y), y.EqualInS1(x), "%s vs %s", x, y)
			if x.Equal(y) {
				assert.True(t, x.EqualInS1(y), "%s vs %s", x, y)
			}
		}
	}
}

func TestMaterialize(t *testing.T) {
	v := periodic.MustNew("01", "10")
	assert.Equal(t, "", v.Materialize(0))
	assert.Equal(t, "", v.Materialize(-3))
	assert.Equal(t, "0", v.Materialize(1))
	assert.Equal(t, "0110101", v.Materialize(7))
	// restartable
	assert.Equal(t, v.Materialize(7), v.Materialize(7))
}

func TestApprox(t *testing.T) {
	assert.Equal(t, 0.5, periodic.MustNew("1", "0").ApproxDefault())
	assert.Equal(t, 0.0, periodic.MustNew("", "0").ApproxDefault())
	assert.InDelta(t, 1.0/3.0, periodic.MustNew("", "01").ApproxDefault(), 1e-12)
	assert.InDelta(t, 0.5, periodic.MustNew("0", "1").ApproxDefault(), 1e-12)
	assert.Equal(t, 0.75, periodic.MustNew("11", "0").Approx(2))
}

func TestPrepend(t *testing.T) {
	v, err := periodic.MustNew("", "0").Prepend("1")
	require.NoError(t, err)
	assert.Equal(t, "1[:0:]", v.String())

	v, err = periodic.MustNew("", "1").Prepend("1")
	require.NoError(t, err)
	assert.Equal(t, "[:1:]", v.String())

	_, err = periodic.MustNew("", "1").Prepend("x")
	assert.ErrorIs(t, err, periodic.ErrNonBinaryCharacter)
}

func TestParse(t *testing.T) {
	v, err := periodic.Parse("01[:10:]")
	require.NoError(t, err)
	assert.Equal(t, periodic.MustNew("01", "10"), v)

	v, err = periodic.Parse(" 0110 ")
	require.NoError(t, err)
	assert.Equal(t, "011[:0:]", v.String())

	v, err = periodic.Parse("")
	require.NoError(t, err)
	assert.Equal(t, "[:0:]", v.String())

	for _, bad := range []string{"01[:10", "01:]", "[:]"} {
		_, err = periodic.Parse(bad)
		assert.ErrorIs(t, err, periodic.ErrMalformedValue, bad)
	}
	_, err = periodic.Parse("0[::]")
	assert.ErrorIs(t, err, periodic.ErrEmptyPeriod)

	// String and Parse round-trip
	for _, s := range []string{"[:0:]", "1[:10:]", "0[:1:]", "011[:0:]"} {
		v, err = periodic.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, v.String())
	}
}
