package coords

import (
	"errors"
	"math"
	"testing"

	"github.com/litescript/ls-rigel/internal/mathx"
)

func TestConstruction_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		build   func() error
		wantErr bool
	}{
		{"ecliptic origin", func() error { _, err := NewEcliptic(0, 0); return err }, false},
		{"ecliptic lon 2π", func() error { _, err := NewEcliptic(mathx.Tau, 0); return err }, true},
		{"ecliptic lat pole", func() error { _, err := NewEcliptic(1, math.Pi/2); return err }, false},
		{"equatorial dec > π/2", func() error { _, err := NewEquatorial(1, math.Pi/2+1e-9); return err }, true},
		{"equatorial negative ra", func() error { _, err := NewEquatorial(-0.1, 0); return err }, true},
		{"horizontal south pole", func() error { _, err := NewHorizontal(0, -math.Pi/2); return err }, false},
		{"horizontal deg alt 91", func() error { _, err := NewHorizontalDeg(10, 91); return err }, true},
		{"geographic -180", func() error { _, err := NewGeographicDeg(-180, 0); return err }, true},
		{"geographic +180", func() error { _, err := NewGeographicDeg(180, 0); return err }, false},
		{"geographic just above -180", func() error { _, err := NewGeographicDeg(-179.999, 0); return err }, false},
		{"geographic lat 90", func() error { _, err := NewGeographicDeg(0, 90); return err }, false},
		{"geographic lat -90.5", func() error { _, err := NewGeographicDeg(0, -90.5); return err }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if tt.wantErr {
				if !errors.Is(err, mathx.ErrInvalidArgument) {
					t.Errorf("err = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestGeographicValidationHelpers(t *testing.T) {
	if IsValidLonDeg(-180) || !IsValidLonDeg(180) || IsValidLonDeg(180.001) {
		t.Error("longitude interval should be (-180, 180]")
	}
	if !IsValidLatDeg(90) || IsValidLatDeg(90.01) {
		t.Error("latitude interval should be [-90, 90]")
	}

	g := MustGeographicDeg(30, 45)
	if math.Abs(g.Lon()-math.Pi/6) > 1e-15 || math.Abs(g.LatDeg()-45) > 1e-12 {
		t.Errorf("geographic = %v", g)
	}
}

func TestEquatorialAccessors(t *testing.T) {
	eq := MustEquatorial(math.Pi, -math.Pi/4)
	if math.Abs(eq.RAHr()-12) > 1e-12 {
		t.Errorf("RAHr = %v, want 12", eq.RAHr())
	}
	if math.Abs(eq.RADeg()-180) > 1e-12 || math.Abs(eq.DecDeg()+45) > 1e-12 {
		t.Errorf("degrees = %v, %v", eq.RADeg(), eq.DecDeg())
	}
	if got, want := eq.String(), "(ra=12.0000h, dec=-45.0000°)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestHorizontal_AngularDistance(t *testing.T) {
	a := MustHorizontalDeg(6.5682, 46.5183)
	b := MustHorizontalDeg(8.5476, 47.3763)

	if d := a.AngularDistanceTo(b); math.Abs(d-0.027935461189288496) > 1e-12 {
		t.Errorf("AngularDistanceTo = %v, want 0.0279354611892885", d)
	}
	if d := a.AngularDistanceTo(a); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}
}

func TestHorizontal_AzOctantName(t *testing.T) {
	tests := []struct {
		az   float64
		want string
	}{
		{0, "N"},
		{10, "N"},
		{45, "NE"},
		{100, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SO"},
		{270, "O"},
		{335, "NO"},
		{350, "N"},
	}

	for _, tt := range tests {
		got := MustHorizontalDeg(tt.az, 0).AzOctantName("N", "E", "S", "O")
		if got != tt.want {
			t.Errorf("AzOctantName(%v°) = %q, want %q", tt.az, got, tt.want)
		}
	}
}

func TestStringForms(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{MustEcliptic(mathx.OfDeg(22.5), mathx.OfDeg(18)).String(), "(λ=22.5000°, β=18.0000°)"},
		{MustHorizontalDeg(350, 7.2).String(), "(az=350.0000°, alt=7.2000°)"},
		{MustGeographicDeg(6.57, 46.52).String(), "(lon=6.5700°, lat=46.5200°)"},
		{Cartesian{X: 1, Y: -0.25}.String(), "(x=1.0000, y=-0.2500)"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustEquatorial should panic on out-of-range declination")
		}
	}()
	MustEquatorial(0, 2)
}
