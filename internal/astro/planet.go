package astro

import (
	"math"

	"github.com/litescript/ls-rigel/internal/convert"
	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/mathx"
)

// Planet is a planet as seen from Earth on a given day.
type Planet struct {
	object
}

// NewPlanet returns a planet with the given apparent attributes.
func NewPlanet(name string, pos coords.Equatorial, angularSize, magnitude float64) (*Planet, error) {
	o, err := newObject(name, pos, angularSize, magnitude, Physical{})
	if err != nil {
		return nil, err
	}
	return &Planet{object: o}, nil
}

func (*Planet) Kind() Kind { return KindPlanet }

// PlanetModel holds the orbital elements of one planet at J2010 and places
// it on a given day.
type PlanetModel struct {
	_             noCompare
	name          string
	inner         bool
	period        float64 // tropical years
	lonAtEpoch    float64
	lonAtPerigee  float64
	eccentricity  float64
	semiMajorAxis float64 // AU
	cosI, sinI    float64
	nodeLon       float64
	angularSize0  float64 // at 1 AU
	magnitude0    float64 // at 1 AU
}

func newPlanetModel(name string, inner bool, period, lonAtEpochDeg, lonAtPerigeeDeg, e, a, inclinationDeg, nodeLonDeg, angularSizeArcsec, magnitude float64) *PlanetModel {
	i := mathx.OfDeg(inclinationDeg)
	return &PlanetModel{
		name:          name,
		inner:         inner,
		period:        period,
		lonAtEpoch:    mathx.OfDeg(lonAtEpochDeg),
		lonAtPerigee:  mathx.OfDeg(lonAtPerigeeDeg),
		eccentricity:  e,
		semiMajorAxis: a,
		cosI:          math.Cos(i),
		sinI:          math.Sin(i),
		nodeLon:       mathx.OfDeg(nodeLonDeg),
		angularSize0:  mathx.OfArcsec(angularSizeArcsec),
		magnitude0:    magnitude,
	}
}

var (
	Mercury = newPlanetModel("Mercure", true, 0.24085, 75.5671, 77.612, 0.205627, 0.387098, 7.0051, 48.449, 6.74, -0.42)
	Venus   = newPlanetModel("Vénus", true, 0.615207, 272.30044, 131.54, 0.006812, 0.723329, 3.3947, 76.769, 16.92, -4.40)
	// Earth is the reference body for the others and is never observed.
	Earth   = newPlanetModel("Terre", false, 0.999996, 99.556772, 103.2055, 0.016671, 0.999985, 0, 0, 0, 0)
	Mars    = newPlanetModel("Mars", false, 1.880765, 109.09646, 336.217, 0.093348, 1.523689, 1.8497, 49.632, 9.36, -1.52)
	Jupiter = newPlanetModel("Jupiter", false, 11.857911, 337.917132, 14.6633, 0.048907, 5.20278, 1.3035, 100.595, 196.74, -9.40)
	Saturn  = newPlanetModel("Saturne", false, 29.310579, 172.398316, 89.567, 0.053853, 9.51134, 2.4873, 113.752, 165.60, -8.88)
	Uranus  = newPlanetModel("Uranus", false, 84.039492, 356.135400, 172.884833, 0.046321, 19.21814, 0.773059, 73.926961, 65.80, -7.19)
	Neptune = newPlanetModel("Neptune", false, 165.84539, 326.895127, 23.07, 0.010483, 30.1985, 1.7673, 131.879, 62.20, -6.87)
)

// Planets returns the models of the seven planets observable from Earth,
// ordered by distance from the Sun.
func Planets() []*PlanetModel {
	return []*PlanetModel{Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune}
}

// Name returns the planet's display name.
func (m *PlanetModel) Name() string { return m.name }

// heliocentric returns the true anomaly and radius (AU) of the planet's
// orbit daysSinceJ2010 days after J2010.
func (m *PlanetModel) heliocentric(daysSinceJ2010 float64) (trueAnomaly, radius float64) {
	meanAnomaly := (mathx.Tau/tropicalYear)*(daysSinceJ2010/m.period) + m.lonAtEpoch - m.lonAtPerigee
	trueAnomaly = meanAnomaly + 2*m.eccentricity*math.Sin(meanAnomaly)
	radius = m.semiMajorAxis * (1 - m.eccentricity*m.eccentricity) / (1 + m.eccentricity*math.Cos(trueAnomaly))
	return trueAnomaly, radius
}

// At computes the planet daysSinceJ2010 days after J2010. conv must be the
// ecliptic to equatorial conversion for the same instant. Earth is placed
// at the origin with zero size and magnitude.
func (m *PlanetModel) At(daysSinceJ2010 float64, conv convert.EclipticToEquatorial) *Planet {
	if m == Earth {
		return mustPlanet(NewPlanet(m.name, coords.MustEquatorial(0, 0), 0, 0))
	}

	v, r := m.heliocentric(daysSinceJ2010)
	l := v + m.lonAtPerigee

	sinLN, cosLN := math.Sin(l-m.nodeLon), math.Cos(l-m.nodeLon)
	psi := mathx.Asin(sinLN * m.sinI)
	rProj := r * math.Cos(psi)
	lProj := math.Atan2(sinLN*m.cosI, cosLN) + m.nodeLon

	vEarth, rEarth := Earth.heliocentric(daysSinceJ2010)
	lEarth := vEarth + Earth.lonAtPerigee

	rho := math.Sqrt(rEarth*rEarth + r*r - 2*rEarth*r*math.Cos(l-lEarth)*math.Cos(psi))

	var lambda float64
	if m.inner {
		lambda = mathx.NormalizePositive(math.Pi + lEarth +
			math.Atan(rProj*math.Sin(lEarth-lProj)/(rEarth-rProj*math.Cos(lEarth-lProj))))
	} else {
		lambda = mathx.NormalizePositive(lProj +
			math.Atan2(rEarth*math.Sin(lProj-lEarth), rProj-rEarth*math.Cos(lProj-lEarth)))
	}
	beta := math.Atan(rProj * math.Tan(psi) * math.Sin(lambda-lProj) / (rEarth * math.Sin(lProj-lEarth)))

	phase := (1 + math.Cos(lambda-l)) / 2
	magnitude := m.magnitude0 + 5*math.Log10(r*rho/math.Sqrt(phase))

	pos := conv.Apply(coords.MustEcliptic(lambda, beta))
	return mustPlanet(NewPlanet(m.name, pos, m.angularSize0/rho, magnitude))
}

func mustPlanet(p *Planet, err error) *Planet {
	if err != nil {
		panic(err)
	}
	return p
}
