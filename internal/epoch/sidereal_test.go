package epoch

import (
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"

	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/mathx"
)

// angleDiff returns the signed difference a-b wrapped into (-π, π].
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, mathx.Tau)
	if d > math.Pi {
		d -= mathx.Tau
	} else if d <= -math.Pi {
		d += mathx.Tau
	}
	return d
}

func TestGreenwich(t *testing.T) {
	tests := []struct {
		name string
		when time.Time
		want float64
	}{
		{"1980-04-22", time.Date(1980, 4, 22, 14, 36, 51, 670_000_000, time.UTC), 1.2221107819499082},
		{"J2000 noon", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 4.894961211636989},
		{"2024-06-15", time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC), 1.4706652839228411},
		{"same instant in another zone", time.Date(2024, 6, 15, 14, 0, 0, 0, time.FixedZone("CEST", 2*3600)), 1.4706652839228411},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Greenwich(tt.when); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Greenwich = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGreenwich_AgreesWithMeeus(t *testing.T) {
	instants := []time.Time{
		time.Date(1980, 4, 22, 14, 36, 51, 0, time.UTC),
		time.Date(2003, 7, 27, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 4, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 21, 30, 0, 0, time.UTC),
	}

	for _, when := range instants {
		want := sidereal.Mean(julian.TimeToJD(when)).Rad()
		if d := angleDiff(Greenwich(when), want); math.Abs(d) > 1e-4 {
			t.Errorf("%v: Greenwich differs from meeus by %v rad", when, d)
		}
	}
}

func TestGreenwich_Periodicity(t *testing.T) {
	start := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	drift := mathx.Tau * (solarToSidereal - 1)

	for k := 1; k <= 5; k++ {
		later := start.Add(time.Duration(k) * 24 * time.Hour)
		d := angleDiff(Greenwich(later), Greenwich(start))
		if math.Abs(d-float64(k)*drift) > 1e-6 {
			t.Errorf("after %d days: advanced %v rad, want %v", k, d, float64(k)*drift)
		}
	}

	next := Greenwich(start.Add(24 * time.Hour))
	if math.Abs(next-1.4878680758123153) > 1e-9 {
		t.Errorf("Greenwich(next day) = %v, want 1.4878680758123153", next)
	}
}

func TestGreenwich_Range(t *testing.T) {
	start := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	for h := 0; h < 24*30; h += 7 {
		got := Greenwich(start.Add(time.Duration(h) * time.Hour))
		if got < 0 || got >= mathx.Tau {
			t.Fatalf("Greenwich out of [0, 2π): %v", got)
		}
	}
}

func TestLocal(t *testing.T) {
	when := time.Date(1980, 4, 22, 14, 36, 51, 670_000_000, time.UTC)

	got := Local(when, coords.MustGeographicDeg(30, 45))
	if math.Abs(got-1.745709557548207) > 1e-9 {
		t.Errorf("Local = %v, want 1.745709557548207", got)
	}

	west := Local(when, coords.MustGeographicDeg(-120, 0))
	if west < 0 || west >= mathx.Tau {
		t.Errorf("Local west of Greenwich = %v, want in [0, 2π)", west)
	}
}
