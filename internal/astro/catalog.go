package astro

import (
	"fmt"
	"io"
	"slices"

	"github.com/litescript/ls-rigel/internal/mathx"
)

// Catalog is an immutable collection of stars, asterisms and pulsars. Every
// asterism star belongs to the catalog, and each asterism's members are
// also available as indices into Stars.
type Catalog struct {
	_         noCompare
	stars     []*Star
	asterisms []*Asterism
	indices   map[*Asterism][]int
	pulsars   []*Pulsar
}

// NewCatalog builds a catalog. It fails if an asterism contains a star that
// is not in stars.
func NewCatalog(stars []*Star, asterisms []*Asterism, pulsars []*Pulsar) (*Catalog, error) {
	index := make(map[*Star]int, len(stars))
	for i, s := range stars {
		if _, dup := index[s]; !dup {
			index[s] = i
		}
	}

	indices := make(map[*Asterism][]int, len(asterisms))
	for n, a := range asterisms {
		ids := make([]int, len(a.stars))
		for i, s := range a.stars {
			pos, ok := index[s]
			if !ok {
				return nil, fmt.Errorf("%w: asterism %d: star %q is not in the catalog", mathx.ErrInvalidArgument, n, s.Name())
			}
			ids[i] = pos
		}
		indices[a] = ids
	}

	return &Catalog{
		stars:     slices.Clone(stars),
		asterisms: slices.Clone(asterisms),
		indices:   indices,
		pulsars:   slices.Clone(pulsars),
	}, nil
}

// Stars returns the catalog's stars; the position of a star is its index.
func (c *Catalog) Stars() []*Star { return slices.Clone(c.stars) }

// Pulsars returns the catalog's pulsars.
func (c *Catalog) Pulsars() []*Pulsar { return slices.Clone(c.pulsars) }

// Asterisms returns the catalog's asterisms in insertion order.
func (c *Catalog) Asterisms() []*Asterism { return slices.Clone(c.asterisms) }

// AsterismIndices returns the indices into Stars of the members of a, in
// order, or nil if a is not part of the catalog.
func (c *Catalog) AsterismIndices(a *Asterism) []int {
	return slices.Clone(c.indices[a])
}

// NumStars returns the number of stars.
func (c *Catalog) NumStars() int { return len(c.stars) }

// NumPulsars returns the number of pulsars.
func (c *Catalog) NumPulsars() int { return len(c.pulsars) }

// A Loader reads catalog records from r and adds them to b.
type Loader interface {
	Load(r io.Reader, b *CatalogBuilder) error
}

// CatalogBuilder accumulates catalog entries. It is not safe for concurrent
// use.
type CatalogBuilder struct {
	stars     []*Star
	asterisms []*Asterism
	pulsars   []*Pulsar
}

// NewCatalogBuilder returns an empty builder.
func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{}
}

func (b *CatalogBuilder) AddStar(s *Star) *CatalogBuilder {
	b.stars = append(b.stars, s)
	return b
}

func (b *CatalogBuilder) AddAsterism(a *Asterism) *CatalogBuilder {
	b.asterisms = append(b.asterisms, a)
	return b
}

func (b *CatalogBuilder) AddPulsar(p *Pulsar) *CatalogBuilder {
	b.pulsars = append(b.pulsars, p)
	return b
}

// Stars returns the stars added so far.
func (b *CatalogBuilder) Stars() []*Star { return slices.Clone(b.stars) }

// Asterisms returns the asterisms added so far.
func (b *CatalogBuilder) Asterisms() []*Asterism { return slices.Clone(b.asterisms) }

// Pulsars returns the pulsars added so far.
func (b *CatalogBuilder) Pulsars() []*Pulsar { return slices.Clone(b.pulsars) }

// LoadFrom runs l over r, adding what it reads to b.
func (b *CatalogBuilder) LoadFrom(r io.Reader, l Loader) (*CatalogBuilder, error) {
	if err := l.Load(r, b); err != nil {
		return b, err
	}
	return b, nil
}

// Build returns the catalog of everything added so far.
func (b *CatalogBuilder) Build() (*Catalog, error) {
	return NewCatalog(b.stars, b.asterisms, b.pulsars)
}
