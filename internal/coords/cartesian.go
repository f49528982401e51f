package coords

import (
	"fmt"
	"math"
)

// Cartesian is a point on the projection plane.
type Cartesian struct {
	_ noCompare
	X float64
	Y float64
}

// DistanceTo returns the Euclidean distance to o.
func (c Cartesian) DistanceTo(o Cartesian) float64 {
	return math.Hypot(c.X-o.X, c.Y-o.Y)
}

func (c Cartesian) String() string {
	return fmt.Sprintf("(x=%.4f, y=%.4f)", c.X, c.Y)
}
