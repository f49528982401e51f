// Package mathx provides the interval, angle and polynomial helpers the
// coordinate systems are built on.
package mathx

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is wrapped by every precondition failure in the engine.
var ErrInvalidArgument = errors.New("invalid argument")

// noCompare makes a struct non-comparable, so values cannot be used as map
// keys or compared with ==.
type noCompare [0]func()

// Interval is the behaviour shared by the closed and half-open intervals.
type Interval interface {
	Low() float64
	High() float64
	Size() float64
	Contains(v float64) bool
}

// CheckIn returns v if iv contains it, and an ErrInvalidArgument naming what
// otherwise.
func CheckIn(iv Interval, v float64, what string) (float64, error) {
	if !iv.Contains(v) {
		return 0, fmt.Errorf("%w: %s %v outside %v", ErrInvalidArgument, what, v, iv)
	}
	return v, nil
}

// ClosedInterval is [low, high].
type ClosedInterval struct {
	_         noCompare
	low, high float64
}

// NewClosed returns [low, high]. It fails unless low < high.
func NewClosed(low, high float64) (ClosedInterval, error) {
	if !(low < high) {
		return ClosedInterval{}, fmt.Errorf("%w: interval bounds %v >= %v", ErrInvalidArgument, low, high)
	}
	return ClosedInterval{low: low, high: high}, nil
}

// SymmetricClosed returns [-size/2, size/2]. It fails unless size > 0.
func SymmetricClosed(size float64) (ClosedInterval, error) {
	if !(size > 0) {
		return ClosedInterval{}, fmt.Errorf("%w: interval size %v", ErrInvalidArgument, size)
	}
	return ClosedInterval{low: -size / 2, high: size / 2}, nil
}

// MustClosed is like NewClosed but panics on invalid bounds.
func MustClosed(low, high float64) ClosedInterval {
	iv, err := NewClosed(low, high)
	if err != nil {
		panic(err)
	}
	return iv
}

// MustSymmetricClosed is like SymmetricClosed but panics on a non-positive size.
func MustSymmetricClosed(size float64) ClosedInterval {
	iv, err := SymmetricClosed(size)
	if err != nil {
		panic(err)
	}
	return iv
}

func (iv ClosedInterval) Low() float64  { return iv.low }
func (iv ClosedInterval) High() float64 { return iv.high }
func (iv ClosedInterval) Size() float64 { return iv.high - iv.low }

// Contains reports whether low <= v <= high.
func (iv ClosedInterval) Contains(v float64) bool {
	return v >= iv.low && v <= iv.high
}

// Clip saturates v to the interval bounds.
func (iv ClosedInterval) Clip(v float64) float64 {
	switch {
	case v >= iv.high:
		return iv.high
	case v <= iv.low:
		return iv.low
	default:
		return v
	}
}

func (iv ClosedInterval) String() string {
	return fmt.Sprintf("[ %.2f ; %.2f ]", iv.low, iv.high)
}

// RightOpenInterval is [low, high).
type RightOpenInterval struct {
	_         noCompare
	low, high float64
}

// NewRightOpen returns [low, high). It fails unless low < high.
func NewRightOpen(low, high float64) (RightOpenInterval, error) {
	if !(low < high) {
		return RightOpenInterval{}, fmt.Errorf("%w: interval bounds %v >= %v", ErrInvalidArgument, low, high)
	}
	return RightOpenInterval{low: low, high: high}, nil
}

// SymmetricRightOpen returns [-size/2, size/2). It fails unless size > 0.
func SymmetricRightOpen(size float64) (RightOpenInterval, error) {
	if !(size > 0) {
		return RightOpenInterval{}, fmt.Errorf("%w: interval size %v", ErrInvalidArgument, size)
	}
	return RightOpenInterval{low: -size / 2, high: size / 2}, nil
}

// MustRightOpen is like NewRightOpen but panics on invalid bounds.
func MustRightOpen(low, high float64) RightOpenInterval {
	iv, err := NewRightOpen(low, high)
	if err != nil {
		panic(err)
	}
	return iv
}

// MustSymmetricRightOpen is like SymmetricRightOpen but panics on a
// non-positive size.
func MustSymmetricRightOpen(size float64) RightOpenInterval {
	iv, err := SymmetricRightOpen(size)
	if err != nil {
		panic(err)
	}
	return iv
}

func (iv RightOpenInterval) Low() float64  { return iv.low }
func (iv RightOpenInterval) High() float64 { return iv.high }
func (iv RightOpenInterval) Size() float64 { return iv.high - iv.low }

// Contains reports whether low <= v < high.
func (iv RightOpenInterval) Contains(v float64) bool {
	return v >= iv.low && v < iv.high
}

// Reduce wraps any real into the interval.
func (iv RightOpenInterval) Reduce(v float64) float64 {
	size := iv.Size()
	r := v - size*math.Floor((v-iv.low)/size)
	// The quotient can round across an integer, leaving r an ulp or two
	// outside on either side.
	if r < iv.low || r >= iv.high {
		return iv.low
	}
	return r
}

func (iv RightOpenInterval) String() string {
	return fmt.Sprintf("[ %.2f ; %.2f [", iv.low, iv.high)
}

// LeftOpenInterval is (low, high].
type LeftOpenInterval struct {
	_         noCompare
	low, high float64
}

// SymmetricLeftOpen returns (-size/2, size/2]. It fails unless size > 0.
func SymmetricLeftOpen(size float64) (LeftOpenInterval, error) {
	if !(size > 0) {
		return LeftOpenInterval{}, fmt.Errorf("%w: interval size %v", ErrInvalidArgument, size)
	}
	return LeftOpenInterval{low: -size / 2, high: size / 2}, nil
}

// MustSymmetricLeftOpen is like SymmetricLeftOpen but panics on a
// non-positive size.
func MustSymmetricLeftOpen(size float64) LeftOpenInterval {
	iv, err := SymmetricLeftOpen(size)
	if err != nil {
		panic(err)
	}
	return iv
}

func (iv LeftOpenInterval) Low() float64  { return iv.low }
func (iv LeftOpenInterval) High() float64 { return iv.high }
func (iv LeftOpenInterval) Size() float64 { return iv.high - iv.low }

// Contains reports whether low < v <= high.
func (iv LeftOpenInterval) Contains(v float64) bool {
	return v > iv.low && v <= iv.high
}

func (iv LeftOpenInterval) String() string {
	return fmt.Sprintf("] %.2f ; %.2f ]", iv.low, iv.high)
}
