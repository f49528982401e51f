package astro

import (
	"fmt"
	"slices"

	"github.com/litescript/ls-rigel/internal/mathx"
)

// Asterism is a non-empty, ordered group of stars joined by lines when the
// sky is drawn.
type Asterism struct {
	_     noCompare
	stars []*Star
}

// NewAsterism returns an asterism of the given stars, in order. The slice is
// copied.
func NewAsterism(stars []*Star) (*Asterism, error) {
	if len(stars) == 0 {
		return nil, fmt.Errorf("%w: empty asterism", mathx.ErrInvalidArgument)
	}
	if slices.Contains(stars, nil) {
		return nil, fmt.Errorf("%w: asterism with a missing star", mathx.ErrInvalidArgument)
	}
	return &Asterism{stars: slices.Clone(stars)}, nil
}

// Stars returns a copy of the asterism's stars.
func (a *Asterism) Stars() []*Star { return slices.Clone(a.stars) }

// Len returns the number of stars.
func (a *Asterism) Len() int { return len(a.stars) }
