package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/litescript/ls-rigel/internal/astro"
	"github.com/litescript/ls-rigel/internal/mathx"
)

// AsterismLoader reads asterisms, one per line, as comma-separated
// Hipparcos numbers of stars already added to the builder. Blank lines and
// lines starting with '#' are ignored.
type AsterismLoader struct{}

// Load implements astro.Loader.
func (AsterismLoader) Load(r io.Reader, b *astro.CatalogBuilder) error {
	// The lookup lives only for this call. Stars without a Hipparcos number
	// cannot be referenced; the first star with a given number wins.
	byHip := make(map[int]*astro.Star)
	for _, s := range b.Stars() {
		if id := s.HipparcosID(); id != 0 {
			if _, ok := byHip[id]; !ok {
				byHip[id] = s
			}
		}
	}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Split(text, ",")
		stars := make([]*astro.Star, 0, len(fields))
		for _, f := range fields {
			id, err := optionalInt(f, "hip")
			if err != nil {
				return fmt.Errorf("catalog: asterisms line %d: %w", line, err)
			}
			s, ok := byHip[id]
			if !ok {
				return fmt.Errorf("catalog: asterisms line %d: %w: unknown star %d", line, mathx.ErrInvalidArgument, id)
			}
			stars = append(stars, s)
		}

		a, err := astro.NewAsterism(stars)
		if err != nil {
			return fmt.Errorf("catalog: asterisms line %d: %w", line, err)
		}
		b.AddAsterism(a)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("catalog: asterisms: %w", err)
	}
	return nil
}
