// Package convert provides the coordinate conversions between the ecliptic,
// equatorial and horizontal systems.
//
// A conversion is built once for an instant (and, for horizontal coordinates,
// an observer) and then applied to any number of points; construction does
// the trigonometric setup that every point shares.
package convert

import (
	"math"
	"time"

	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/epoch"
	"github.com/litescript/ls-rigel/internal/mathx"
)

type noCompare [0]func()

// obliquity is the mean obliquity of the ecliptic in radians as a function of
// Julian centuries since J2000.
var obliquity = mathx.MustPolynomial(
	mathx.OfArcsec(0.00181),
	mathx.OfArcsec(-0.0006),
	mathx.OfArcsec(-46.815),
	mathx.MustDMS(23, 26, 21.45),
)

// EclipticToEquatorial converts ecliptic coordinates to equatorial
// coordinates for a fixed instant.
type EclipticToEquatorial struct {
	_          noCompare
	cosEpsilon float64
	sinEpsilon float64
}

// NewEclipticToEquatorial returns the conversion valid at when.
func NewEclipticToEquatorial(when time.Time) EclipticToEquatorial {
	eps := obliquity.At(epoch.J2000.JulianCenturiesUntil(when))
	return EclipticToEquatorial{
		cosEpsilon: math.Cos(eps),
		sinEpsilon: math.Sin(eps),
	}
}

// Apply converts ecl. Right ascension is normalised to [0, 2π).
func (c EclipticToEquatorial) Apply(ecl coords.Ecliptic) coords.Equatorial {
	lambda, beta := ecl.Lon(), ecl.Lat()
	sinLambda := math.Sin(lambda)

	alpha := math.Atan2(sinLambda*c.cosEpsilon-math.Tan(beta)*c.sinEpsilon, math.Cos(lambda))
	delta := mathx.Asin(math.Sin(beta)*c.cosEpsilon + math.Cos(beta)*c.sinEpsilon*sinLambda)

	return coords.MustEquatorial(mathx.NormalizePositive(alpha), delta)
}

// EquatorialToHorizontal converts equatorial coordinates to horizontal
// coordinates for a fixed instant and observer.
//
// Uses standard astronomical conventions:
//   - Azimuth: 0 = North, π/2 = East, π = South, 3π/2 = West
//   - Altitude: 0 = horizon, π/2 = zenith
type EquatorialToHorizontal struct {
	_            noCompare
	cosPhi       float64
	sinPhi       float64
	siderealTime float64
}

// NewEquatorialToHorizontal returns the conversion valid at when for an
// observer at where.
func NewEquatorialToHorizontal(when time.Time, where coords.Geographic) EquatorialToHorizontal {
	return EquatorialToHorizontal{
		cosPhi:       math.Cos(where.Lat()),
		sinPhi:       math.Sin(where.Lat()),
		siderealTime: epoch.Local(when, where),
	}
}

// SiderealTime returns the local sidereal time the conversion was built
// with, in radians.
func (c EquatorialToHorizontal) SiderealTime() float64 { return c.siderealTime }

// Apply converts equ. Azimuth is normalised to [0, 2π).
func (c EquatorialToHorizontal) Apply(equ coords.Equatorial) coords.Horizontal {
	// Hour angle = LST - RA
	sinH, cosH := math.Sincos(c.siderealTime - equ.RA())
	sinDelta, cosDelta := math.Sincos(equ.Dec())

	h := sinDelta*c.sinPhi + cosDelta*c.cosPhi*cosH
	az := math.Atan2(-cosDelta*c.cosPhi*sinH, sinDelta-c.sinPhi*h)

	return coords.MustHorizontal(mathx.NormalizePositive(az), mathx.Asin(h))
}
