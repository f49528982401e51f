// Package astro models the celestial objects the sky engine computes or
// reads from a catalog, and the orbital models that place the Sun, the Moon
// and the planets for a given day.
package astro

import (
	"fmt"
	"math"

	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/mathx"
)

type noCompare [0]func()

// Kind tags the variant of a CelestialObject.
type Kind int

const (
	KindSun Kind = iota
	KindMoon
	KindPlanet
	KindStar
	KindPulsar
)

var kindNames = [...]string{"sun", "moon", "planet", "star", "pulsar"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Physical holds the descriptive attributes shown alongside an object.
// P0 and P1 are a rotation period and its derivative; for pulsars they are
// the spin period in seconds and its spin-down rate.
type Physical struct {
	Age      float64 // years
	Distance float64 // kpc
	P0       float64
	P1       float64
}

// CelestialObject is implemented by *Sun, *Moon, *Planet, *Star and
// *Pulsar and by nothing else. Objects are immutable; two objects are the
// same object only if they are the same pointer.
type CelestialObject interface {
	Kind() Kind
	Name() string
	EquatorialPos() coords.Equatorial
	// AngularSize is the apparent diameter in radians.
	AngularSize() float64
	Magnitude() float64
	Physical() Physical
	// Info is a short human-readable label.
	Info() string

	base() *object
}

// object carries the attributes shared by every variant. Angular size and
// magnitude are kept in single precision.
type object struct {
	_           noCompare
	name        string
	pos         coords.Equatorial
	angularSize float32
	magnitude   float32
	phys        Physical
}

func newObject(name string, pos coords.Equatorial, angularSize, magnitude float64, phys Physical) (object, error) {
	if !(angularSize >= 0) {
		return object{}, fmt.Errorf("%w: %s angular size %v is negative", mathx.ErrInvalidArgument, name, angularSize)
	}
	return object{
		name:        name,
		pos:         pos,
		angularSize: float32(angularSize),
		magnitude:   float32(magnitude),
		phys:        phys,
	}, nil
}

func (o *object) base() *object                    { return o }
func (o *object) Name() string                     { return o.name }
func (o *object) EquatorialPos() coords.Equatorial { return o.pos }
func (o *object) AngularSize() float64             { return float64(o.angularSize) }
func (o *object) Magnitude() float64               { return float64(o.magnitude) }
func (o *object) Physical() Physical               { return o.phys }
func (o *object) Info() string                     { return o.name }
func (o *object) String() string                   { return o.name }

// AngularSeparation returns the great-circle distance between two
// equatorial positions in radians, using the haversine formula.
func AngularSeparation(a, b coords.Equatorial) float64 {
	dRA := b.RA() - a.RA()
	dDec := b.Dec() - a.Dec()

	h := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(a.Dec())*math.Cos(b.Dec())*math.Sin(dRA/2)*math.Sin(dRA/2)

	// Clamp to avoid numerical errors with asin
	if h > 1 {
		h = 1
	}
	return 2 * math.Asin(math.Sqrt(h))
}
