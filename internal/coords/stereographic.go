package coords

import (
	"fmt"
	"math"

	"github.com/litescript/ls-rigel/internal/mathx"
)

// Stereographic projects horizontal coordinates onto the plane tangent to
// the sphere at a chosen centre. The trigonometry of the centre is computed
// once at construction.
type Stereographic struct {
	_       noCompare
	center  Horizontal
	lambda0 float64
	phi1    float64
	cosPhi1 float64
	sinPhi1 float64
}

// NewStereographic returns the projection centred on center.
func NewStereographic(center Horizontal) Stereographic {
	return Stereographic{
		center:  center,
		lambda0: center.Az(),
		phi1:    center.Alt(),
		cosPhi1: math.Cos(center.Alt()),
		sinPhi1: math.Sin(center.Alt()),
	}
}

// Center returns the projection centre.
func (p Stereographic) Center() Horizontal {
	return p.center
}

// Apply maps h onto the plane. It is undefined only at the antipode of the
// centre.
func (p Stereographic) Apply(h Horizontal) Cartesian {
	sinPhi, cosPhi := math.Sincos(h.Alt())
	dLambda := h.Az() - p.lambda0
	sinDL, cosDL := math.Sincos(dLambda)

	d := 1 / (1 + sinPhi*p.sinPhi1 + cosPhi*p.cosPhi1*cosDL)

	return Cartesian{
		X: d * cosPhi * sinDL,
		Y: d * (sinPhi*p.cosPhi1 - cosPhi*p.sinPhi1*cosDL),
	}
}

// InverseApply recovers the horizontal coordinates of a plane point. The
// origin maps back to the centre exactly.
func (p Stereographic) InverseApply(c Cartesian) Horizontal {
	if c.X == 0 && c.Y == 0 {
		return MustHorizontal(mathx.NormalizePositive(p.lambda0), p.phi1)
	}

	rho := math.Sqrt(c.X*c.X + c.Y*c.Y)
	rho2 := rho * rho
	sinC := 2 * rho / (rho2 + 1)
	cosC := (1 - rho2) / (rho2 + 1)

	lambda := math.Atan2(c.X*sinC, rho*p.cosPhi1*cosC-c.Y*p.sinPhi1*sinC) + p.lambda0
	phi := mathx.Asin(cosC*p.sinPhi1 + c.Y*sinC*p.cosPhi1/rho)

	return MustHorizontal(mathx.NormalizePositive(lambda), phi)
}

// CircleCenterForParallel returns the centre of the circle the parallel
// (constant altitude) through hor projects to.
func (p Stereographic) CircleCenterForParallel(hor Horizontal) Cartesian {
	return Cartesian{X: 0, Y: p.cosPhi1 / (math.Sin(hor.Alt()) + p.sinPhi1)}
}

// CircleRadiusForParallel returns the radius of the circle the parallel
// through hor projects to.
func (p Stereographic) CircleRadiusForParallel(hor Horizontal) float64 {
	return math.Cos(hor.Alt()) / (math.Sin(hor.Alt()) + p.sinPhi1)
}

// ApplyToAngle converts an angular diameter at the centre into a diameter on
// the plane.
func (p Stereographic) ApplyToAngle(rad float64) float64 {
	return 2 * math.Tan(rad/4)
}

func (p Stereographic) String() string {
	return fmt.Sprintf("stereographic projection centred at %v", p.center)
}
