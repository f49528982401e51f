package epoch

import (
	"time"

	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/mathx"
)

const solarToSidereal = 1.002737909

var s0 = mathx.MustPolynomial(0.000025862, 2400.051336, 6.697374558)

// Greenwich returns the Greenwich sidereal time at when, in radians in
// [0, 2π).
func Greenwich(when time.Time) float64 {
	utc := when.UTC()
	day := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)

	t := J2000.JulianCenturiesUntil(day)
	hours := float64(utc.Sub(day).Milliseconds()) / 3.6e6

	return mathx.NormalizePositive(mathx.OfHr(s0.At(t) + solarToSidereal*hours))
}

// Local returns the local sidereal time at when for an observer at where,
// in radians in [0, 2π).
func Local(when time.Time, where coords.Geographic) float64 {
	return mathx.NormalizePositive(Greenwich(when) + where.Lon())
}
