package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePositive(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{Tau, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-Tau * 3, 0},
	}

	for _, tt := range tests {
		got := NormalizePositive(tt.in)
		assert.InDelta(t, tt.want, got, 1e-12, "NormalizePositive(%v)", tt.in)
		assert.True(t, got >= 0 && got < Tau)
	}
}

func TestDegreeRoundTrip(t *testing.T) {
	for a := -10.0; a <= 10; a += 0.37 {
		assert.InDelta(t, a, OfDeg(ToDeg(a)), 1e-12)
		assert.InDelta(t, a, OfHr(ToHr(a)), 1e-12)
	}
}

func TestConversions(t *testing.T) {
	assert.InDelta(t, math.Pi, OfDeg(180), 1e-15)
	assert.InDelta(t, 90.0, ToDeg(math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi, OfHr(12), 1e-15)
	assert.InDelta(t, 6.0, ToHr(math.Pi/2), 1e-12)
	assert.InDelta(t, OfDeg(1), OfArcsec(3600), 1e-15)
	assert.InDelta(t, 0.4090928042223287, MustDMS(23, 26, 21.448), 1e-12)
}

func TestOfDMS_Validation(t *testing.T) {
	rad, err := OfDMS(10, 30, 0)
	require.NoError(t, err)
	assert.InDelta(t, OfDeg(10.5), rad, 1e-15)

	invalid := []struct {
		d, m int
		s    float64
	}{
		{-1, 0, 0},
		{0, 60, 0},
		{0, -1, 0},
		{0, 0, 60},
		{0, 0, -0.1},
	}
	for _, c := range invalid {
		_, err := OfDMS(c.d, c.m, c.s)
		assert.ErrorIs(t, err, ErrInvalidArgument, "OfDMS(%d, %d, %v)", c.d, c.m, c.s)
	}
}
