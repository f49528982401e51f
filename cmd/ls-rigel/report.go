package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cast"

	"github.com/litescript/ls-rigel/internal/astro"
	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/mathx"
	"github.com/litescript/ls-rigel/internal/state"
	"github.com/litescript/ls-rigel/internal/ui"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
)

// parseAzAlt parses "az,alt" in degrees.
func parseAzAlt(s string) (coords.Horizontal, error) {
	azStr, altStr, ok := strings.Cut(s, ",")
	if !ok {
		return coords.Horizontal{}, fmt.Errorf("%w: want az,alt, got %q", mathx.ErrInvalidArgument, s)
	}
	az, err := cast.ToFloat64E(strings.TrimSpace(azStr))
	if err != nil {
		return coords.Horizontal{}, fmt.Errorf("parse azimuth: %w", err)
	}
	alt, err := cast.ToFloat64E(strings.TrimSpace(altStr))
	if err != nil {
		return coords.Horizontal{}, fmt.Errorf("parse altitude: %w", err)
	}
	return coords.NewHorizontalDeg(az, alt)
}

// writeReport prints the solar system bodies and the object nearest to
// target, or to the projection centre when target is nil.
func writeReport(w io.Writer, snap state.Snapshot, target *coords.Horizontal) error {
	s := snap.Sky

	fmt.Fprintln(w, titleStyle.Render("ls-rigel sky report"))
	fmt.Fprintf(w, "Time:     %s\n", snap.Time.UTC().Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "Observer: %s\n", snap.Where)
	fmt.Fprintf(w, "Centre:   %s, FOV %.0f°\n", snap.Center, snap.FOV)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-16s %14s %14s %14s %14s %7s %9s\n", "Body", "Azimuth", "Altitude", "RA", "Dec", "Mag", "Size")
	fmt.Fprintln(w, strings.Repeat("-", 94))

	bodies := []astro.CelestialObject{s.Sun(), s.Moon()}
	for _, p := range s.Planets() {
		bodies = append(bodies, p)
	}
	for _, o := range bodies {
		h, _ := s.HorizontalOf(o)
		equ := o.EquatorialPos()
		line := fmt.Sprintf("%-16s %14s %14s %14s %14s %7.2f %8.1f″",
			o.Info(),
			ui.FormatAngle(h.Az()), ui.FormatAngle(h.Alt()),
			ui.FormatRA(equ.RA()), ui.FormatAngle(equ.Dec()),
			o.Magnitude(), mathx.ToDeg(o.AngularSize())*3600)
		if h.Alt() < 0 {
			line = dimStyle.Render(line)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	above := 0
	for _, st := range s.Stars() {
		if h, _ := s.HorizontalOf(st); h.Alt() >= 0 {
			above++
		}
	}
	fmt.Fprintf(w, "Catalog: %d stars (%d above the horizon), %d asterisms, %d pulsars\n",
		len(s.Stars()), above, len(s.Asterisms()), len(s.Pulsars()))

	var point coords.Cartesian
	label := "centre"
	if target != nil {
		point = s.Projection().Apply(*target)
		label = target.String()
	}
	obj, ok, err := s.ObjectClosestTo(point, snap.Radius)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(w, "Nearest to %s: nothing within %.3f\n", label, snap.Radius)
		return nil
	}
	pos, _ := s.PositionOf(obj)
	fmt.Fprintf(w, "Nearest to %s: %s [%s], mag %.2f, %.4f away\n",
		label, obj.Info(), obj.Kind(), obj.Magnitude(), pos.DistanceTo(point))
	return nil
}
