package ui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestModel_View(t *testing.T) {
	m := New(testManager(t))

	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before size = %q", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := next.(Model).View()
	for _, want := range []string{"Soleil", "Jupiter", "q: quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View lacks %q", want)
		}
	}
}

func TestModel_Pan(t *testing.T) {
	mgr := testManager(t)
	m := press(t, New(mgr), "right", "right", "up", "left")

	c := mgr.View().Center
	if math.Abs(c.AzDeg()-25) > 1e-9 || math.Abs(c.AltDeg()-27) > 1e-9 {
		t.Errorf("centre = (%v, %v), want (25, 27)", c.AzDeg(), c.AltDeg())
	}
	if m.snapshot.Center.AzDeg() != c.AzDeg() {
		t.Error("model snapshot not refreshed after panning")
	}
}

func TestModel_TimeKeys(t *testing.T) {
	mgr := testManager(t)
	start := mgr.View().Time

	m := press(t, New(mgr), "+", "+", "-")
	if got := mgr.View().Time.Sub(start); got != time.Hour {
		t.Errorf("time moved by %v, want 1h", got)
	}
	if !m.snapshot.Sky.When().Equal(start.Add(time.Hour)) {
		t.Errorf("sky time = %v", m.snapshot.Sky.When())
	}

	press(t, m, "n")
	if d := time.Since(mgr.View().Time); d < 0 || d > time.Minute {
		t.Errorf("n should return to now, time is %v", mgr.View().Time)
	}
}

func TestModel_RadiusKeys(t *testing.T) {
	mgr := testManager(t)
	m := New(mgr)

	press(t, m, "]")
	if r := mgr.View().Radius; math.Abs(r-0.2) > 1e-12 {
		t.Errorf("radius = %v, want 0.2", r)
	}
	press(t, m, "[", "[")
	if r := mgr.View().Radius; math.Abs(r-0.05) > 1e-12 {
		t.Errorf("radius = %v, want 0.05", r)
	}

	for i := 0; i < 20; i++ {
		press(t, m, "[")
	}
	if r := mgr.View().Radius; r != minRadius {
		t.Errorf("radius = %v, want floor %v", r, minRadius)
	}
}

func TestModel_Quit(t *testing.T) {
	m := New(testManager(t))

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}

	if _, cmd := m.Update(key("x")); cmd != nil {
		t.Error("unbound keys should do nothing")
	}
}

func TestGradientColor(t *testing.T) {
	if got := gradientColor(0, 0, 8, 1); got != "#3B82F6" {
		t.Errorf("gradientColor start = %s, want #3B82F6", got)
	}
	if got := gradientColor(4, 0, 8, 1); len(got) != 7 || got[0] != '#' {
		t.Errorf("gradientColor middle = %q", got)
	}
}
