package astro

import (
	"github.com/litescript/ls-rigel/internal/coords"
)

// Pulsar is a catalog pulsar.
type Pulsar struct {
	object
}

// NewPulsar returns a pulsar with spin period p0 (s), period derivative p1,
// characteristic age (years) and distance (kpc).
func NewPulsar(name string, pos coords.Equatorial, p0, p1, age, distance, magnitude float64) (*Pulsar, error) {
	o, err := newObject(name, pos, 0, magnitude, Physical{Age: age, Distance: distance, P0: p0, P1: p1})
	if err != nil {
		return nil, err
	}
	return &Pulsar{object: o}, nil
}

func (*Pulsar) Kind() Kind { return KindPulsar }

// CharacteristicAge returns the spin-down age P0/(2·P1) in the same time
// unit as P0, or 0 when the period derivative is unknown.
func CharacteristicAge(p0, p1 float64) float64 {
	if p1 == 0 {
		return 0
	}
	return 0.5 * p0 / p1
}
