package coords

import (
	"fmt"
	"math"

	"github.com/litescript/ls-rigel/internal/mathx"
)

// Ecliptic coordinates: longitude in [0, 2π), latitude in [-π/2, π/2].
type Ecliptic struct{ spherical }

// NewEcliptic validates and returns ecliptic coordinates in radians.
func NewEcliptic(lon, lat float64) (Ecliptic, error) {
	s, err := newSpherical(eclipticSystem, lon, lat)
	return Ecliptic{s}, err
}

// MustEcliptic is like NewEcliptic but panics on out-of-range values.
func MustEcliptic(lon, lat float64) Ecliptic { return must(NewEcliptic(lon, lat)) }

func (c Ecliptic) Lon() float64    { return c.lon }
func (c Ecliptic) Lat() float64    { return c.lat }
func (c Ecliptic) LonDeg() float64 { return c.lonDeg() }
func (c Ecliptic) LatDeg() float64 { return c.latDeg() }

func (c Ecliptic) String() string {
	return fmt.Sprintf("(λ=%.4f°, β=%.4f°)", c.LonDeg(), c.LatDeg())
}

// Equatorial coordinates: right ascension in [0, 2π), declination in
// [-π/2, π/2].
type Equatorial struct{ spherical }

// NewEquatorial validates and returns equatorial coordinates in radians.
func NewEquatorial(ra, dec float64) (Equatorial, error) {
	s, err := newSpherical(equatorialSystem, ra, dec)
	return Equatorial{s}, err
}

// MustEquatorial is like NewEquatorial but panics on out-of-range values.
func MustEquatorial(ra, dec float64) Equatorial { return must(NewEquatorial(ra, dec)) }

func (c Equatorial) RA() float64     { return c.lon }
func (c Equatorial) RADeg() float64  { return c.lonDeg() }
func (c Equatorial) RAHr() float64   { return mathx.ToHr(c.lon) }
func (c Equatorial) Dec() float64    { return c.lat }
func (c Equatorial) DecDeg() float64 { return c.latDeg() }

func (c Equatorial) String() string {
	return fmt.Sprintf("(ra=%.4fh, dec=%.4f°)", c.RAHr(), c.DecDeg())
}

// Horizontal coordinates: azimuth in [0, 2π) measured from north through
// east, altitude in [-π/2, π/2].
type Horizontal struct{ spherical }

// NewHorizontal validates and returns horizontal coordinates in radians.
func NewHorizontal(az, alt float64) (Horizontal, error) {
	s, err := newSpherical(horizontalSystem, az, alt)
	return Horizontal{s}, err
}

// NewHorizontalDeg is NewHorizontal with arguments in degrees.
func NewHorizontalDeg(azDeg, altDeg float64) (Horizontal, error) {
	return NewHorizontal(mathx.OfDeg(azDeg), mathx.OfDeg(altDeg))
}

// MustHorizontal is like NewHorizontal but panics on out-of-range values.
func MustHorizontal(az, alt float64) Horizontal { return must(NewHorizontal(az, alt)) }

// MustHorizontalDeg is like NewHorizontalDeg but panics on out-of-range values.
func MustHorizontalDeg(azDeg, altDeg float64) Horizontal {
	return must(NewHorizontalDeg(azDeg, altDeg))
}

func (c Horizontal) Az() float64     { return c.lon }
func (c Horizontal) AzDeg() float64  { return c.lonDeg() }
func (c Horizontal) Alt() float64    { return c.lat }
func (c Horizontal) AltDeg() float64 { return c.latDeg() }

// AngularDistanceTo returns the great-circle distance to that, in radians,
// by the spherical law of cosines.
func (c Horizontal) AngularDistanceTo(that Horizontal) float64 {
	cos := math.Sin(c.lat)*math.Sin(that.lat) +
		math.Cos(c.lat)*math.Cos(that.lat)*math.Cos(c.lon-that.lon)
	return math.Acos(unitRange.Clip(cos))
}

// AzOctantName names the octant the azimuth falls in, built from the four
// cardinal labels given (e.g. "N", "E", "S", "O" gives "NE", "SO", ...).
func (c Horizontal) AzOctantName(n, e, s, w string) string {
	switch int(math.Round(c.AzDeg() * 8 / 360)) {
	case 1:
		return n + e
	case 2:
		return e
	case 3:
		return s + e
	case 4:
		return s
	case 5:
		return s + w
	case 6:
		return w
	case 7:
		return n + w
	default:
		return n
	}
}

func (c Horizontal) String() string {
	return fmt.Sprintf("(az=%.4f°, alt=%.4f°)", c.AzDeg(), c.AltDeg())
}

// Geographic coordinates of an observer. Longitude is validated in
// [-180°, 180°), latitude in [-90°, 90°]; both are stored in radians.
type Geographic struct{ spherical }

// NewGeographicDeg validates degrees and returns geographic coordinates.
func NewGeographicDeg(lonDeg, latDeg float64) (Geographic, error) {
	if _, err := newSpherical(geographicSystem, lonDeg, latDeg); err != nil {
		return Geographic{}, err
	}
	return Geographic{spherical{lon: mathx.OfDeg(lonDeg), lat: mathx.OfDeg(latDeg)}}, nil
}

// MustGeographicDeg is like NewGeographicDeg but panics on out-of-range values.
func MustGeographicDeg(lonDeg, latDeg float64) Geographic {
	return must(NewGeographicDeg(lonDeg, latDeg))
}

// IsValidLonDeg reports whether lonDeg is an acceptable geographic longitude.
func IsValidLonDeg(lonDeg float64) bool { return geographicSystem.lon.Contains(lonDeg) }

// IsValidLatDeg reports whether latDeg is an acceptable geographic latitude.
func IsValidLatDeg(latDeg float64) bool { return geographicSystem.lat.Contains(latDeg) }

func (c Geographic) Lon() float64    { return c.lon }
func (c Geographic) Lat() float64    { return c.lat }
func (c Geographic) LonDeg() float64 { return c.lonDeg() }
func (c Geographic) LatDeg() float64 { return c.latDeg() }

func (c Geographic) String() string {
	return fmt.Sprintf("(lon=%.4f°, lat=%.4f°)", c.LonDeg(), c.LatDeg())
}
