package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-rigel/internal/astro"
	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/mathx"
	"github.com/litescript/ls-rigel/internal/state"
)

const (
	colorInView  = "229" // bright gold
	colorVisible = "255"
	colorBelow   = "240"
	colorAccent  = "#d0c8ff"
)

// bodyRow is one line of the bodies table.
type bodyRow struct {
	name   string
	kind   astro.Kind
	hor    coords.Horizontal
	equ    coords.Equatorial
	mag    float64
	dAz    float64 // azimuth offset from the view centre, deg
	inView bool
}

// BodiesModel lists the solar system bodies and the object nearest the
// view centre.
type BodiesModel struct {
	width  int
	height int

	rows    []bodyRow
	center  coords.Horizontal
	fov     float64
	radius  float64
	nearest astro.CelestialObject
	sepDeg  float64
	err     error
}

// NewBodiesModel creates an empty bodies view.
func NewBodiesModel() BodiesModel {
	return BodiesModel{}
}

// SetSize updates the viewport size.
func (m BodiesModel) SetSize(width, height int) BodiesModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData rebuilds the table from a snapshot.
func (m BodiesModel) UpdateData(snap state.Snapshot) BodiesModel {
	m.center = snap.Center
	m.fov = snap.FOV
	m.radius = snap.Radius
	m.rows = nil
	m.nearest, m.err = nil, nil

	s := snap.Sky
	if s == nil {
		return m
	}

	bodies := []astro.CelestialObject{s.Sun(), s.Moon()}
	for _, p := range s.Planets() {
		bodies = append(bodies, p)
	}
	for _, o := range bodies {
		h, _ := s.HorizontalOf(o)
		m.rows = append(m.rows, bodyRow{
			name:   o.Info(),
			kind:   o.Kind(),
			hor:    h,
			equ:    o.EquatorialPos(),
			mag:    o.Magnitude(),
			dAz:    normalizeAngle(h.AzDeg() - snap.Center.AzDeg()),
			inView: inView(h, snap.Center, snap.FOV),
		})
	}

	// The view centre projects onto the origin.
	obj, ok, err := s.ObjectClosestTo(coords.Cartesian{}, snap.Radius)
	if err != nil {
		m.err = err
		return m
	}
	if ok {
		m.nearest = obj
		h, _ := s.HorizontalOf(obj)
		m.sepDeg = mathx.ToDeg(h.AngularDistanceTo(snap.Center))
	}
	return m
}

// Nearest returns the object nearest the view centre, or nil.
func (m BodiesModel) Nearest() astro.CelestialObject {
	return m.nearest
}

// View renders the table.
func (m BodiesModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	headStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	b.WriteString(headStyle.Render(fmt.Sprintf("  %-14s %-6s %14s %14s %7s %14s %14s %6s",
		"Body", "Kind", "Azimuth", "Altitude", "ΔAz", "RA", "Dec", "Mag")))
	b.WriteString("\n")

	for _, r := range m.rows {
		color := colorVisible
		switch {
		case r.inView:
			color = colorInView
		case r.hor.Alt() < 0:
			color = colorBelow
		}
		marker := " "
		if r.inView {
			marker = "◆"
		}
		line := fmt.Sprintf("%s %-14s %-6s %14s %14s %+6.1f° %14s %14s %6.2f",
			marker, r.name, r.kind,
			FormatAngle(r.hor.Az()), FormatAngle(r.hor.Alt()), r.dAz,
			FormatRA(r.equ.RA()), FormatAngle(r.equ.Dec()), r.mag)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderNearest())
	return b.String()
}

func (m BodiesModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	title := titleStyle.Render("Sky")
	centre := dimStyle.Render(fmt.Sprintf("Az:%.0f° (%s) Alt:%.0f°",
		m.center.AzDeg(), m.center.AzOctantName("N", "E", "S", "W"), m.center.AltDeg()))
	fov := dimStyle.Render(fmt.Sprintf("FOV:%.0f°", m.fov))
	radius := dimStyle.Render(fmt.Sprintf("Radius:%.3f", m.radius))

	return fmt.Sprintf("  %s | %s | %s | %s", title, centre, fov, radius)
}

func (m BodiesModel) renderNearest() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorInView))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent))

	switch {
	case m.err != nil:
		return "  " + m.err.Error()
	case m.nearest == nil:
		return dimStyle.Render("  Nothing near the centre")
	}

	line := fmt.Sprintf(">>> %s [%s] | %.2f° from centre | mag %.2f",
		m.nearest.Info(), m.nearest.Kind(), m.sepDeg, m.nearest.Magnitude())
	out := accentStyle.Render(line)

	if p := m.nearest.Physical(); p.P0 > 0 && m.nearest.Kind() == astro.KindPulsar {
		out += "\n" + dimStyle.Render(fmt.Sprintf("    P0 %.6g s | P1 %.3g | %.3g kpc", p.P0, p.P1, p.Distance))
	}
	return out
}

// inView reports whether h lies within half the field of view of center.
func inView(h, center coords.Horizontal, fovDeg float64) bool {
	return h.AngularDistanceTo(center) <= mathx.OfDeg(fovDeg)/2
}

var azimuthOffsets = mathx.MustSymmetricRightOpen(360)

// normalizeAngle wraps angle to the -180..+180 range
func normalizeAngle(a float64) float64 {
	return azimuthOffsets.Reduce(a)
}

// FormatAngle renders an angle in radians as signed degrees, minutes and
// seconds to a tenth of an arcsecond.
func FormatAngle(rad float64) string {
	return fmt.Sprintf("%.1s", sexa.FmtAngle(unit.Angle(rad)))
}

// FormatRA renders a right ascension in radians as hours, minutes and
// seconds.
func FormatRA(rad float64) string {
	return fmt.Sprintf("%.1s", sexa.FmtRA(unit.RA(rad)))
}
