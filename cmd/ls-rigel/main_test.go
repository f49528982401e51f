package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-rigel/internal/catalog"
	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/logging"
	"github.com/litescript/ls-rigel/internal/mathx"
	"github.com/litescript/ls-rigel/internal/state"
)

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, 6.57, opts.cfg.Observer.Lon)
	assert.Equal(t, 180.0, opts.cfg.View.Az)
	assert.False(t, opts.summary)
	assert.Empty(t, opts.set)
}

func TestParseFlags_OverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rigel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("observer:\n  lon: 30\n  lat: 45\nview:\n  fov: 60\n"), 0o600))

	opts, err := parseFlags([]string{"-config", path, "-lat", "10", "-summary", "-nearest", "16,23"})
	require.NoError(t, err)

	assert.Equal(t, 30.0, opts.cfg.Observer.Lon, "file value kept")
	assert.Equal(t, 10.0, opts.cfg.Observer.Lat, "flag wins over file")
	assert.Equal(t, 60.0, opts.cfg.View.FOV)
	assert.True(t, opts.summary)
	assert.Equal(t, "16,23", opts.nearest)
}

func TestParseFlags_Invalid(t *testing.T) {
	_, err := parseFlags([]string{"-lat", "95"})
	assert.Error(t, err)

	_, err = parseFlags([]string{"-radius", "-1"})
	assert.Error(t, err)

	_, err = parseFlags([]string{"-no-such-flag"})
	assert.Error(t, err)
}

func TestParseAzAlt(t *testing.T) {
	h, err := parseAzAlt("16, 23")
	require.NoError(t, err)
	assert.InDelta(t, 16, h.AzDeg(), 1e-12)
	assert.InDelta(t, 23, h.AltDeg(), 1e-12)

	for _, bad := range []string{"16", "x,1", "1,y", "400,0", "0,91"} {
		_, err := parseAzAlt(bad)
		assert.Error(t, err, bad)
	}
	_, err = parseAzAlt("16")
	assert.ErrorIs(t, err, mathx.ErrInvalidArgument)
}

func reportFor(t *testing.T, target *coords.Horizontal, radius float64) string {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	mgr := state.NewManager(state.Config{
		Time:   time.Date(2020, 4, 4, 0, 0, 0, 0, time.UTC),
		Where:  coords.MustGeographicDeg(30, 45),
		Center: coords.MustHorizontalDeg(20, 22),
		FOV:    100,
		Radius: radius,
	}, cat, logging.Discard())

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, mgr.Snapshot(), target))
	return buf.String()
}

func TestWriteReport(t *testing.T) {
	target := coords.MustHorizontalDeg(16, 23)
	out := reportFor(t, &target, 0.07)

	for _, want := range []string{"Soleil", "Lune (", "Mercure", "Neptune", "173 stars", "6 asterisms", "7 pulsars"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "Kap Cas [star]")
}

func TestWriteReport_NothingNear(t *testing.T) {
	target := coords.MustHorizontalDeg(180, 23)
	out := reportFor(t, &target, 0.01)
	assert.Contains(t, out, "nothing within 0.010")
}
