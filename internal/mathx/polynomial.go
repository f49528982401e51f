package mathx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Polynomial is a fixed-degree polynomial with coefficients stored highest
// degree first.
type Polynomial struct {
	_      noCompare
	coeffs []float64
}

// NewPolynomial builds lead·x^n + rest[0]·x^(n-1) + ... + rest[n-1].
// The leading coefficient must be non-zero.
func NewPolynomial(lead float64, rest ...float64) (Polynomial, error) {
	if lead == 0 {
		return Polynomial{}, fmt.Errorf("%w: zero leading coefficient", ErrInvalidArgument)
	}
	coeffs := make([]float64, 0, len(rest)+1)
	coeffs = append(coeffs, lead)
	coeffs = append(coeffs, rest...)
	return Polynomial{coeffs: coeffs}, nil
}

// MustPolynomial is like NewPolynomial but panics on a zero leading
// coefficient.
func MustPolynomial(lead float64, rest ...float64) Polynomial {
	p, err := NewPolynomial(lead, rest...)
	if err != nil {
		panic(err)
	}
	return p
}

// Degree returns the polynomial's degree.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// At evaluates the polynomial at x using Horner's method.
func (p Polynomial) At(x float64) float64 {
	v := p.coeffs[0]
	for _, c := range p.coeffs[1:] {
		v = v*x + c
	}
	return v
}

// String renders the polynomial without zero terms, e.g. "3x^2-x+1.5".
func (p Polynomial) String() string {
	var b strings.Builder
	n := p.Degree()
	for i, c := range p.coeffs {
		if c == 0 {
			continue
		}
		exp := n - i
		switch {
		case c < 0:
			b.WriteByte('-')
		case b.Len() > 0:
			b.WriteByte('+')
		}
		if abs := math.Abs(c); abs != 1 || exp == 0 {
			b.WriteString(strconv.FormatFloat(abs, 'f', -1, 64))
		}
		switch {
		case exp == 1:
			b.WriteByte('x')
		case exp > 1:
			b.WriteString("x^" + strconv.Itoa(exp))
		}
	}
	return b.String()
}
