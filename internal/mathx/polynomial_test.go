package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolynomial_MatchesDirectEvaluation(t *testing.T) {
	coeffSets := [][]float64{
		{4.2},
		{-1, 3},
		{2, 0, -5},
		{0.5, -1.25, 3, 7},
		{1e-3, 2, -3, 0, 11},
	}
	points := []float64{-2.5, -1, 0, 0.3, 1, 4}

	for _, cs := range coeffSets {
		p, err := NewPolynomial(cs[0], cs[1:]...)
		require.NoError(t, err)
		assert.Equal(t, len(cs)-1, p.Degree())

		for _, x := range points {
			want := 0.0
			for i, c := range cs {
				want += c * math.Pow(x, float64(len(cs)-1-i))
			}
			assert.InDelta(t, want, p.At(x), 1e-9, "%v at %v", p, x)
		}
	}
}

func TestPolynomial_ZeroLeadingCoefficient(t *testing.T) {
	_, err := NewPolynomial(0, 1, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Panics(t, func() { MustPolynomial(0) })
}

func TestPolynomial_String(t *testing.T) {
	tests := []struct {
		p    Polynomial
		want string
	}{
		{MustPolynomial(3, -1, 1.5), "3x^2-x+1.5"},
		{MustPolynomial(-1, 0, 0, 2), "-x^3+2"},
		{MustPolynomial(1, 1), "x+1"},
		{MustPolynomial(-4.5), "-4.5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.p.String())
	}
}
