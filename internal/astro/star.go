package astro

import (
	"fmt"
	"math"

	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/mathx"
)

var colorIndexRange = mathx.MustClosed(-0.5, 5.5)

// Star is a catalog star. Stars have no measurable angular size.
type Star struct {
	object
	hipparcosID int
	colorIndex  float32
}

// NewStar returns a star. hipparcosID must be non-negative (0 when the star
// has no Hipparcos number) and colorIndex, the B-V index, must lie in
// [-0.5, 5.5].
func NewStar(hipparcosID int, name string, pos coords.Equatorial, magnitude, colorIndex float64) (*Star, error) {
	if hipparcosID < 0 {
		return nil, fmt.Errorf("%w: star %q has negative Hipparcos id %d", mathx.ErrInvalidArgument, name, hipparcosID)
	}
	if _, err := mathx.CheckIn(colorIndexRange, colorIndex, "color index"); err != nil {
		return nil, err
	}
	o, err := newObject(name, pos, 0, magnitude, Physical{})
	if err != nil {
		return nil, err
	}
	return &Star{object: o, hipparcosID: hipparcosID, colorIndex: float32(colorIndex)}, nil
}

func (*Star) Kind() Kind { return KindStar }

// HipparcosID returns the Hipparcos catalog number, or 0.
func (s *Star) HipparcosID() int { return s.hipparcosID }

// ColorIndex returns the B-V color index.
func (s *Star) ColorIndex() float64 { return float64(s.colorIndex) }

// ColorTemperature returns the approximate surface temperature in kelvins
// derived from the color index.
func (s *Star) ColorTemperature() int {
	c := float64(s.colorIndex)
	return int(math.Floor(4600 * (1/(0.92*c+1.7) + 1/(0.92*c+0.62))))
}
