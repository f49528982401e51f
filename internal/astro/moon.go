package astro

import (
	"fmt"
	"math"

	"github.com/litescript/ls-rigel/internal/convert"
	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/mathx"
)

const moonName = "Lune"

var (
	moonPhysical = Physical{Age: 4.53e9, Distance: 1.2e-11, P0: 2_360_448}
	phaseRange   = mathx.MustClosed(0, 1)
)

// Moon is the Moon as seen from Earth on a given day.
type Moon struct {
	object
	phase float32
}

// NewMoon returns a Moon. phase is the illuminated fraction and must lie in
// [0, 1].
func NewMoon(pos coords.Equatorial, angularSize, magnitude, phase float64) (*Moon, error) {
	if _, err := mathx.CheckIn(phaseRange, phase, "moon phase"); err != nil {
		return nil, err
	}
	o, err := newObject(moonName, pos, angularSize, magnitude, moonPhysical)
	if err != nil {
		return nil, err
	}
	return &Moon{object: o, phase: float32(phase)}, nil
}

func (*Moon) Kind() Kind { return KindMoon }

// Phase returns the illuminated fraction in [0, 1].
func (m *Moon) Phase() float64 { return float64(m.phase) }

// Info appends the phase as a percentage, e.g. "Lune (37.5%)".
func (m *Moon) Info() string {
	return fmt.Sprintf("%s (%.1f%%)", m.name, m.phase*100)
}

func (m *Moon) String() string { return m.Info() }

// Orbital elements of the Moon at J2010.
var (
	moonLonAtEpoch   = mathx.OfDeg(91.929336)
	moonLonAtPerigee = mathx.OfDeg(130.143076)
	moonNodeAtEpoch  = mathx.OfDeg(291.682547)
	moonInclination  = mathx.OfDeg(5.145396)
	moonAngularSize0 = mathx.OfDeg(0.5181)

	moonDailyMotion      = mathx.OfDeg(13.1763966)
	moonPerigeeMotion    = mathx.OfDeg(0.1114041)
	moonNodeMotion       = mathx.OfDeg(0.0529539)
	moonEvection         = mathx.OfDeg(1.2739)
	moonAnnualEquation   = mathx.OfDeg(0.1858)
	moonThirdCorrection  = mathx.OfDeg(0.37)
	moonCentre           = mathx.OfDeg(6.2886)
	moonFourthCorrection = mathx.OfDeg(0.214)
	moonVariation        = mathx.OfDeg(0.6583)
	moonNodeCorrection   = mathx.OfDeg(0.16)
)

const moonEccentricity = 0.0549

// MoonAt computes the Moon daysSinceJ2010 days after J2010. conv must be the
// ecliptic to equatorial conversion for the same instant.
func MoonAt(daysSinceJ2010 float64, conv convert.EclipticToEquatorial) *Moon {
	d := daysSinceJ2010

	l := moonDailyMotion*d + moonLonAtEpoch
	meanAnomaly := l - moonPerigeeMotion*d - moonLonAtPerigee

	sun := SunAt(d, conv)
	sunAnomaly := sun.MeanAnomaly()
	sunLon := sun.EclipticPos().Lon()

	// Corrections are applied in a fixed order; the single-precision Sun
	// anomaly is part of the result.
	evection := moonEvection * math.Sin(2*(l-sunLon)-meanAnomaly)
	annual := moonAnnualEquation * math.Sin(sunAnomaly)
	third := moonThirdCorrection * math.Sin(sunAnomaly)

	correctedAnomaly := meanAnomaly + evection - annual - third

	centre := moonCentre * math.Sin(correctedAnomaly)
	fourth := moonFourthCorrection * math.Sin(2*correctedAnomaly)

	lCorrected := l + evection + centre - annual + fourth
	lTrue := lCorrected + moonVariation*math.Sin(2*(lCorrected-sunLon))

	node := moonNodeAtEpoch - moonNodeMotion*d
	nodeCorrected := node - moonNodeCorrection*math.Sin(sunAnomaly)

	sinArg, cosArg := math.Sincos(lTrue - nodeCorrected)
	lambda := math.Atan2(sinArg*math.Cos(moonInclination), cosArg) + nodeCorrected
	beta := mathx.Asin(sinArg * math.Sin(moonInclination))

	phase := (1 - math.Cos(lTrue-sunLon)) / 2

	rho := (1 - moonEccentricity*moonEccentricity) /
		(1 + moonEccentricity*math.Cos(correctedAnomaly+centre))
	theta := moonAngularSize0 / rho

	pos := conv.Apply(coords.MustEcliptic(mathx.NormalizePositive(lambda), beta))
	moon, err := NewMoon(pos, theta, 0, phase)
	if err != nil {
		panic(err)
	}
	return moon
}
