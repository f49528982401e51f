// Package coords defines the spherical coordinate systems used by the sky
// engine and the stereographic projection onto the viewing plane.
//
// All four systems share one representation, a longitude/latitude pair in
// radians, and differ only in their valid ranges and axis names. Values are
// immutable and deliberately not comparable: they cannot be map keys.
package coords

import (
	"fmt"
	"math"

	"github.com/litescript/ls-rigel/internal/mathx"
)

// noCompare makes a struct non-comparable.
type noCompare [0]func()

// system describes the valid ranges and axis labels of a spherical system.
type system struct {
	name     string
	lon      mathx.Interval
	lat      mathx.ClosedInterval
	lonLabel string
	latLabel string
}

var (
	fullTurn      = mathx.MustRightOpen(0, mathx.Tau)
	halfTurnRange = mathx.MustSymmetricClosed(math.Pi)

	eclipticSystem   = system{"ecliptic", fullTurn, halfTurnRange, "longitude", "latitude"}
	equatorialSystem = system{"equatorial", fullTurn, halfTurnRange, "right ascension", "declination"}
	horizontalSystem = system{"horizontal", fullTurn, halfTurnRange, "azimuth", "altitude"}

	// Geographic bounds are expressed in degrees; 180°E is valid, -180° is not.
	geographicSystem = system{"geographic", mathx.MustSymmetricLeftOpen(360), mathx.MustSymmetricClosed(180), "longitude", "latitude"}

	unitRange = mathx.MustClosed(-1, 1)
)

// spherical is the longitude/latitude pair behind every coordinate type.
type spherical struct {
	_   noCompare
	lon float64
	lat float64
}

func newSpherical(sys system, lon, lat float64) (spherical, error) {
	if !sys.lon.Contains(lon) {
		return spherical{}, fmt.Errorf("%w: %s %s %v outside %v", mathx.ErrInvalidArgument, sys.name, sys.lonLabel, lon, sys.lon)
	}
	if !sys.lat.Contains(lat) {
		return spherical{}, fmt.Errorf("%w: %s %s %v outside %v", mathx.ErrInvalidArgument, sys.name, sys.latLabel, lat, sys.lat)
	}
	return spherical{lon: lon, lat: lat}, nil
}

func (s spherical) lonDeg() float64 { return mathx.ToDeg(s.lon) }
func (s spherical) latDeg() float64 { return mathx.ToDeg(s.lat) }

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
