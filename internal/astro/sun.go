package astro

import (
	"math"

	"github.com/litescript/ls-rigel/internal/convert"
	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/mathx"
)

const (
	tropicalYear = 365.242191 // days

	sunName      = "Soleil"
	sunMagnitude = -26.7
)

var sunPhysical = Physical{Age: 4.6e9, Distance: 0.0087, P0: 2.333e6}

// Sun is the Sun as seen from Earth on a given day.
type Sun struct {
	object
	ecliptic    coords.Ecliptic
	meanAnomaly float32
}

// NewSun returns a Sun at the given ecliptic and equatorial positions.
func NewSun(ecliptic coords.Ecliptic, pos coords.Equatorial, angularSize, meanAnomaly float64) (*Sun, error) {
	o, err := newObject(sunName, pos, angularSize, sunMagnitude, sunPhysical)
	if err != nil {
		return nil, err
	}
	return &Sun{object: o, ecliptic: ecliptic, meanAnomaly: float32(meanAnomaly)}, nil
}

func (*Sun) Kind() Kind { return KindSun }

// EclipticPos returns the Sun's ecliptic position; its latitude is zero.
func (s *Sun) EclipticPos() coords.Ecliptic { return s.ecliptic }

// MeanAnomaly returns the mean anomaly in radians, not normalised.
func (s *Sun) MeanAnomaly() float64 { return float64(s.meanAnomaly) }

// Orbital elements of the Sun's apparent orbit at J2010.
var (
	sunLonAtEpoch   = mathx.OfDeg(279.557208)
	sunLonAtPerigee = mathx.OfDeg(283.112438)
	sunAngularSize0 = mathx.OfDeg(0.533128)
)

const sunEccentricity = 0.016705

// SunAt computes the Sun daysSinceJ2010 days after J2010. conv must be the
// ecliptic to equatorial conversion for the same instant.
func SunAt(daysSinceJ2010 float64, conv convert.EclipticToEquatorial) *Sun {
	meanAnomaly := mathx.Tau*daysSinceJ2010/tropicalYear + sunLonAtEpoch - sunLonAtPerigee
	trueAnomaly := meanAnomaly + 2*sunEccentricity*math.Sin(meanAnomaly)

	ecl := coords.MustEcliptic(mathx.NormalizePositive(trueAnomaly+sunLonAtPerigee), 0)

	theta := sunAngularSize0 * ((1 + sunEccentricity*math.Cos(trueAnomaly)) /
		(1 - sunEccentricity*sunEccentricity))

	sun, err := NewSun(ecl, conv.Apply(ecl), theta, meanAnomaly)
	if err != nil {
		panic(err)
	}
	return sun
}
