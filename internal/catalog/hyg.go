// Package catalog reads star, asterism and pulsar records into an
// astro.CatalogBuilder and provides the embedded default catalog.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"

	"github.com/litescript/ls-rigel/internal/astro"
	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/mathx"
)

// Column positions in the HYG v3 database.
const (
	hygHip    = 1
	hygProper = 6
	hygMag    = 13
	hygCI     = 16
	hygRARad  = 23
	hygDecRad = 24
	hygBayer  = 27
	hygCon    = 29

	hygMinFields = hygCon + 1
)

// HYGLoader reads the HYG v3 star database (CSV with a header line).
//
// Missing Hipparcos numbers, magnitudes and color indices read as 0. A star
// without a proper name is named after its Bayer designation and
// constellation, "?" standing in for a missing designation.
type HYGLoader struct{}

// Load implements astro.Loader.
func (HYGLoader) Load(r io.Reader, b *astro.CatalogBuilder) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("catalog: hyg header: %w", err)
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("catalog: hyg: %w", err)
		}
		line, _ := cr.FieldPos(0)

		star, err := parseHYGRecord(rec)
		if err != nil {
			return fmt.Errorf("catalog: hyg line %d: %w", line, err)
		}
		b.AddStar(star)
	}
}

func parseHYGRecord(rec []string) (*astro.Star, error) {
	if len(rec) < hygMinFields {
		return nil, fmt.Errorf("%w: %d fields, want at least %d", mathx.ErrInvalidArgument, len(rec), hygMinFields)
	}

	hip, err := optionalInt(rec[hygHip], "hip")
	if err != nil {
		return nil, err
	}
	ra, err := requiredFloat(rec[hygRARad], "rarad")
	if err != nil {
		return nil, err
	}
	dec, err := requiredFloat(rec[hygDecRad], "decrad")
	if err != nil {
		return nil, err
	}
	mag, err := optionalFloat(rec[hygMag], "mag")
	if err != nil {
		return nil, err
	}
	ci, err := optionalFloat(rec[hygCI], "ci")
	if err != nil {
		return nil, err
	}

	pos, err := coords.NewEquatorial(mathx.NormalizePositive(ra), dec)
	if err != nil {
		return nil, err
	}
	return astro.NewStar(hip, starName(rec), pos, mag, ci)
}

func starName(rec []string) string {
	if proper := rec[hygProper]; proper != "" {
		return proper
	}
	bayer := rec[hygBayer]
	if bayer == "" {
		bayer = "?"
	}
	return bayer + " " + rec[hygCon]
}

func requiredFloat(s, field string) (float64, error) {
	v, err := cast.ToFloat64E(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", field, err)
	}
	return v, nil
}

func optionalFloat(s, field string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return requiredFloat(s, field)
}

func optionalInt(s, field string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	// cast parses with base 0, so "010" would read as octal.
	if s = strings.TrimLeft(s, "0"); s == "" {
		s = "0"
	}
	v, err := cast.ToIntE(s)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", field, err)
	}
	return v, nil
}
