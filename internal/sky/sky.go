// Package sky assembles the observed sky: every body of the solar system
// model and every catalog object, projected onto the plane for one instant,
// one observer location and one projection.
package sky

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/litescript/ls-rigel/internal/astro"
	"github.com/litescript/ls-rigel/internal/convert"
	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/epoch"
	"github.com/litescript/ls-rigel/internal/mathx"
)

// entry pairs an object with where it was observed.
type entry struct {
	obj astro.CelestialObject
	hor coords.Horizontal
	pos coords.Cartesian
}

// ObservedSky is an immutable snapshot of the sky. It is safe for
// concurrent use once built; a change to any input calls for a new one.
type ObservedSky struct {
	when    time.Time
	where   coords.Geographic
	proj    coords.Stereographic
	catalog *astro.Catalog

	sun     *astro.Sun
	moon    *astro.Moon
	planets []*astro.Planet
	stars   []*astro.Star
	pulsars []*astro.Pulsar

	// Sun, Moon, planets, stars, pulsars, in that order. The per-kind
	// position slices below are views into it.
	entries []entry
	index   map[astro.CelestialObject]int

	planetsAt int
	starsAt   int
	pulsarsAt int
}

// New computes the sky seen from where at when through proj.
func New(when time.Time, where coords.Geographic, proj coords.Stereographic, cat *astro.Catalog) *ObservedSky {
	days := epoch.J2010.DaysUntil(when)
	e2q := convert.NewEclipticToEquatorial(when)
	q2h := convert.NewEquatorialToHorizontal(when, where)

	s := &ObservedSky{
		when:    when,
		where:   where,
		proj:    proj,
		catalog: cat,
		sun:     astro.SunAt(days, e2q),
		moon:    astro.MoonAt(days, e2q),
		stars:   cat.Stars(),
		pulsars: cat.Pulsars(),
	}

	models := astro.Planets()
	s.planets = make([]*astro.Planet, len(models))
	for i, m := range models {
		s.planets[i] = m.At(days, e2q)
	}

	n := 2 + len(s.planets) + len(s.stars) + len(s.pulsars)
	s.entries = make([]entry, 0, n)
	s.index = make(map[astro.CelestialObject]int, n)

	add := func(o astro.CelestialObject) {
		h := q2h.Apply(o.EquatorialPos())
		s.index[o] = len(s.entries)
		s.entries = append(s.entries, entry{obj: o, hor: h, pos: proj.Apply(h)})
	}

	add(s.sun)
	add(s.moon)
	s.planetsAt = len(s.entries)
	for _, p := range s.planets {
		add(p)
	}
	s.starsAt = len(s.entries)
	for _, st := range s.stars {
		add(st)
	}
	s.pulsarsAt = len(s.entries)
	for _, p := range s.pulsars {
		add(p)
	}
	return s
}

func (s *ObservedSky) When() time.Time                  { return s.when }
func (s *ObservedSky) Where() coords.Geographic         { return s.where }
func (s *ObservedSky) Projection() coords.Stereographic { return s.proj }
func (s *ObservedSky) Catalog() *astro.Catalog          { return s.catalog }

func (s *ObservedSky) Sun() *astro.Sun                { return s.sun }
func (s *ObservedSky) SunPosition() coords.Cartesian  { return s.entries[0].pos }
func (s *ObservedSky) Moon() *astro.Moon              { return s.moon }
func (s *ObservedSky) MoonPosition() coords.Cartesian { return s.entries[1].pos }

// Planets returns the planets other than Earth, in order from the Sun.
func (s *ObservedSky) Planets() []*astro.Planet { return slices.Clone(s.planets) }

// PlanetPositions is aligned with Planets.
func (s *ObservedSky) PlanetPositions() []coords.Cartesian {
	return s.positions(s.planetsAt, s.starsAt)
}

// Stars returns the catalog stars in catalog order.
func (s *ObservedSky) Stars() []*astro.Star { return slices.Clone(s.stars) }

// StarPositions is aligned with Stars, so asterism indices apply to it.
func (s *ObservedSky) StarPositions() []coords.Cartesian {
	return s.positions(s.starsAt, s.pulsarsAt)
}

func (s *ObservedSky) Pulsars() []*astro.Pulsar { return slices.Clone(s.pulsars) }

func (s *ObservedSky) PulsarPositions() []coords.Cartesian {
	return s.positions(s.pulsarsAt, len(s.entries))
}

func (s *ObservedSky) Asterisms() []*astro.Asterism { return s.catalog.Asterisms() }

func (s *ObservedSky) AsterismIndices(a *astro.Asterism) []int {
	return s.catalog.AsterismIndices(a)
}

// Objects returns every object of the snapshot: Sun, Moon, planets, stars,
// then pulsars.
func (s *ObservedSky) Objects() []astro.CelestialObject {
	out := make([]astro.CelestialObject, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.obj
	}
	return out
}

// PositionOf returns the projected position of o, which must be one of
// the snapshot's objects.
func (s *ObservedSky) PositionOf(o astro.CelestialObject) (coords.Cartesian, bool) {
	i, ok := s.index[o]
	if !ok {
		return coords.Cartesian{}, false
	}
	return s.entries[i].pos, true
}

// HorizontalOf returns where the observer sees o.
func (s *ObservedSky) HorizontalOf(o astro.CelestialObject) (coords.Horizontal, bool) {
	i, ok := s.index[o]
	if !ok {
		return coords.Horizontal{}, false
	}
	return s.entries[i].hor, true
}

// ObjectClosestTo returns the object projected nearest to p, provided it
// lies within maxRadius of p. The second result is false when no object
// does. Of objects at equal distance the earliest in Objects order wins.
func (s *ObservedSky) ObjectClosestTo(p coords.Cartesian, maxRadius float64) (astro.CelestialObject, bool, error) {
	if !(maxRadius >= 0) {
		return nil, false, fmt.Errorf("%w: search radius %v is negative", mathx.ErrInvalidArgument, maxRadius)
	}

	var best astro.CelestialObject
	r := maxRadius
	for _, e := range s.entries {
		dx, dy := e.pos.X-p.X, e.pos.Y-p.Y
		if math.Abs(dx) > r || math.Abs(dy) > r {
			continue
		}
		d := math.Hypot(dx, dy)
		if d < r || (best == nil && d == r) {
			best, r = e.obj, d
		}
	}
	return best, best != nil, nil
}

func (s *ObservedSky) positions(from, to int) []coords.Cartesian {
	out := make([]coords.Cartesian, to-from)
	for i, e := range s.entries[from:to] {
		out[i] = e.pos
	}
	return out
}
