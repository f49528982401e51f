package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"hash/fnv"
	"io"

	"github.com/litescript/ls-rigel/internal/astro"
	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/mathx"
)

// Column positions in the pulsar catalog export.
const (
	pulsarName = 0
	pulsarRA   = 1
	pulsarDec  = 2
	pulsarP0   = 3
	pulsarP1   = 4
	pulsarDist = 6
)

// Pulsars have no catalogued visual magnitude; one is derived from the
// name so the same pulsar always draws the same.
const (
	pulsarMagMin   = 15
	pulsarMagRange = 12
)

// PulsarLoader reads a ';'-separated pulsar catalog with a header line:
// name, RA (deg), Dec (deg), P0 (s), P1, an ignored column and distance
// (kpc). Empty numeric fields read as 0.
type PulsarLoader struct{}

// Load implements astro.Loader.
func (PulsarLoader) Load(r io.Reader, b *astro.CatalogBuilder) error {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("catalog: pulsars header: %w", err)
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("catalog: pulsars: %w", err)
		}
		line, _ := cr.FieldPos(0)

		p, err := parsePulsarRecord(rec)
		if err != nil {
			return fmt.Errorf("catalog: pulsars line %d: %w", line, err)
		}
		b.AddPulsar(p)
	}
}

func parsePulsarRecord(rec []string) (*astro.Pulsar, error) {
	if len(rec) <= pulsarP1 {
		return nil, fmt.Errorf("%w: %d fields, want at least %d", mathx.ErrInvalidArgument, len(rec), pulsarP1+1)
	}
	field := func(i int) string {
		if i < len(rec) {
			return rec[i]
		}
		return ""
	}

	name := rec[pulsarName]
	ra, err := requiredFloat(rec[pulsarRA], "ra")
	if err != nil {
		return nil, err
	}
	dec, err := requiredFloat(rec[pulsarDec], "dec")
	if err != nil {
		return nil, err
	}
	p0, err := optionalFloat(rec[pulsarP0], "p0")
	if err != nil {
		return nil, err
	}
	p1, err := optionalFloat(rec[pulsarP1], "p1")
	if err != nil {
		return nil, err
	}
	dist, err := optionalFloat(field(pulsarDist), "dist")
	if err != nil {
		return nil, err
	}

	pos, err := coords.NewEquatorial(mathx.NormalizePositive(mathx.OfDeg(ra)), mathx.OfDeg(dec))
	if err != nil {
		return nil, err
	}
	return astro.NewPulsar(name, pos, p0, p1, astro.CharacteristicAge(p0, p1), dist, pulsarMagnitude(name))
}

// pulsarMagnitude maps name to a magnitude in [15, 27).
func pulsarMagnitude(name string) float64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	u := float64(h.Sum64()>>11) / (1 << 53)
	return pulsarMagMin + pulsarMagRange*u
}
