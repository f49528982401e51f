package mathx

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

var (
	positiveAngles = MustRightOpen(0, Tau)
	sexaComponent  = MustRightOpen(0, 60)
)

// NormalizePositive reduces an angle in radians into [0, 2π).
func NormalizePositive(rad float64) float64 {
	return positiveAngles.Reduce(rad)
}

// OfDeg converts degrees to radians.
func OfDeg(deg float64) float64 {
	return unit.AngleFromDeg(deg).Rad()
}

// ToDeg converts radians to degrees.
func ToDeg(rad float64) float64 {
	return unit.Angle(rad).Deg()
}

// OfHr converts hours of angle to radians.
func OfHr(hr float64) float64 {
	return unit.HourAngleFromHour(hr).Rad()
}

// ToHr converts radians to hours of angle.
func ToHr(rad float64) float64 {
	return unit.HourAngle(rad).Hour()
}

// OfArcsec converts arcseconds to radians.
func OfArcsec(sec float64) float64 {
	return unit.AngleFromSec(sec).Rad()
}

// OfDMS converts degrees, minutes and seconds of arc to radians. Degrees must
// be non-negative and minutes and seconds must lie in [0, 60).
func OfDMS(deg, min int, sec float64) (float64, error) {
	if deg < 0 {
		return 0, fmt.Errorf("%w: negative degrees %d", ErrInvalidArgument, deg)
	}
	if !sexaComponent.Contains(float64(min)) || !sexaComponent.Contains(sec) {
		return 0, fmt.Errorf("%w: minutes %d or seconds %v outside %v", ErrInvalidArgument, min, sec, sexaComponent)
	}
	return unit.NewAngle(' ', deg, min, sec).Rad(), nil
}

// MustDMS is like OfDMS but panics on out-of-range components.
func MustDMS(deg, min int, sec float64) float64 {
	rad, err := OfDMS(deg, min, sec)
	if err != nil {
		panic(err)
	}
	return rad
}

var unitRange = MustClosed(-1, 1)

// Asin is math.Asin with its argument clipped to [-1, 1], so rounding just
// outside the domain yields ±π/2 instead of NaN.
func Asin(v float64) float64 {
	return math.Asin(unitRange.Clip(v))
}
