package astro

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/mathx"
)

func testStar(t *testing.T, hip int, name string) *Star {
	t.Helper()
	s, err := NewStar(hip, name, coords.MustEquatorial(mathx.OfDeg(float64(hip%360)), 0), 2, 0.5)
	require.NoError(t, err)
	return s
}

func TestNewAsterism(t *testing.T) {
	_, err := NewAsterism(nil)
	assert.ErrorIs(t, err, mathx.ErrInvalidArgument)

	_, err = NewAsterism([]*Star{})
	assert.ErrorIs(t, err, mathx.ErrInvalidArgument)

	_, err = NewAsterism([]*Star{testStar(t, 1, "a"), nil})
	assert.ErrorIs(t, err, mathx.ErrInvalidArgument)

	stars := []*Star{testStar(t, 1, "a"), testStar(t, 2, "b")}
	a, err := NewAsterism(stars)
	require.NoError(t, err)

	stars[0] = testStar(t, 3, "c")
	assert.Equal(t, "a", a.Stars()[0].Name(), "asterism must not alias its input")
	assert.Equal(t, 2, a.Len())
}

func TestCatalog_AsterismIndices(t *testing.T) {
	a, b, c, d := testStar(t, 10, "a"), testStar(t, 20, "b"), testStar(t, 30, "c"), testStar(t, 40, "d")

	first, err := NewAsterism([]*Star{c, a})
	require.NoError(t, err)
	second, err := NewAsterism([]*Star{d, b, d})
	require.NoError(t, err)

	cat, err := NewCatalogBuilder().
		AddStar(a).AddStar(b).AddStar(c).AddStar(d).
		AddAsterism(first).AddAsterism(second).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []int{2, 0}, cat.AsterismIndices(first))
	assert.Equal(t, []int{3, 1, 3}, cat.AsterismIndices(second))
	assert.Equal(t, []*Asterism{first, second}, cat.Asterisms())
	assert.Equal(t, 4, cat.NumStars())

	other, err := NewAsterism([]*Star{a})
	require.NoError(t, err)
	assert.Nil(t, cat.AsterismIndices(other))
}

func TestCatalog_RejectsForeignAsterismStar(t *testing.T) {
	a, stranger := testStar(t, 1, "a"), testStar(t, 1, "a")
	ast, err := NewAsterism([]*Star{stranger})
	require.NoError(t, err)

	// Membership is by identity, not by equal attributes.
	_, err = NewCatalogBuilder().AddStar(a).AddAsterism(ast).Build()
	assert.ErrorIs(t, err, mathx.ErrInvalidArgument)
}

func TestCatalog_Immutable(t *testing.T) {
	a := testStar(t, 1, "a")
	b := NewCatalogBuilder().AddStar(a)
	cat, err := b.Build()
	require.NoError(t, err)

	b.AddStar(testStar(t, 2, "b"))
	stars := cat.Stars()
	stars[0] = nil

	assert.Equal(t, 1, cat.NumStars())
	assert.Same(t, a, cat.Stars()[0])
	assert.Len(t, b.Stars(), 2)
}

// lineLoader adds one star per line of "hip name".
type lineLoader struct{}

func (lineLoader) Load(r io.Reader, b *CatalogBuilder) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		var hip int
		var name string
		if _, err := fmt.Sscan(sc.Text(), &hip, &name); err != nil {
			return err
		}
		s, err := NewStar(hip, name, coords.MustEquatorial(0, 0), 0, 0)
		if err != nil {
			return err
		}
		b.AddStar(s)
	}
	return sc.Err()
}

func TestCatalogBuilder_LoadFrom(t *testing.T) {
	b := NewCatalogBuilder()

	_, err := b.LoadFrom(strings.NewReader("1 Alpha\n2 Beta\n"), lineLoader{})
	require.NoError(t, err)
	assert.Len(t, b.Stars(), 2)
	assert.Equal(t, "Beta", b.Stars()[1].Name())

	_, err = b.LoadFrom(strings.NewReader("-4 Gamma\n"), lineLoader{})
	assert.True(t, errors.Is(err, mathx.ErrInvalidArgument))

	pulsar, err := NewPulsar("P", coords.MustEquatorial(0, 0), 1, 0, 0, 0, 15)
	require.NoError(t, err)
	b.AddPulsar(pulsar)

	cat, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, cat.NumPulsars())
	assert.Same(t, pulsar, cat.Pulsars()[0])
	assert.Empty(t, b.Asterisms())
}
