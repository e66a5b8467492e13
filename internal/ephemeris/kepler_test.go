package ephemeris

import (
	"math"
	"testing"
	"time"

	"github.com/astro/zodigo/internal/angle"
	"github.com/astro/zodigo/internal/timeconv"
)

// 2025 March equinox: the Sun's ecliptic longitude is 0° at 2025-03-20
// 09:01 UTC. The approximate model should land within a degree.
func TestSunLongitudeAtEquinox(t *testing.T) {
	jd := timeconv.JulianDay(time.Date(2025, 3, 20, 9, 1, 0, 0, time.UTC))

	k := NewKeplerian()
	smp, err := k.PositionAndSpeed(Sun, jd)
	if err != nil {
		t.Fatalf("PositionAndSpeed: %v", err)
	}

	if off := math.Abs(angle.Normalize(smp.Longitude)); off > 1.0 {
		t.Errorf("sun longitude at equinox = %.4f°, want within 1° of 0", smp.Longitude)
	}
	if smp.Speed < 0.9 || smp.Speed > 1.1 {
		t.Errorf("sun speed = %.4f°/d, want ~0.95-1.02", smp.Speed)
	}
	t.Logf("sun at 2025 equinox: lon=%.4f° speed=%.4f°/d", smp.Longitude, smp.Speed)
}

func TestAllObjectsSampleCleanly(t *testing.T) {
	k := NewKeplerian()
	c := NewCatalog()
	jd := timeconv.JulianDay(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	for _, id := range c.IDs() {
		smp, err := k.PositionAndSpeed(id, jd)
		if err != nil {
			t.Errorf("%s: %v", c.Name(id), err)
			continue
		}
		if smp.Longitude < 0 || smp.Longitude >= 360 {
			t.Errorf("%s: longitude %.4f outside [0, 360)", c.Name(id), smp.Longitude)
		}
		if m := c.MaxDailyMotion(id); math.Abs(smp.Speed) > m {
			t.Errorf("%s: |speed| %.4f exceeds catalog bound %.4f", c.Name(id), smp.Speed, m)
		}
		t.Logf("%-8s lon=%9.4f° speed=%+8.4f°/d", c.Name(id), smp.Longitude, smp.Speed)
	}
}

func TestUnknownObjectErrors(t *testing.T) {
	k := NewKeplerian()
	if _, err := k.PositionAndSpeed(999, timeconv.J2000); err == nil {
		t.Error("expected error for unknown object id")
	}
}

func TestMoonSpeedRange(t *testing.T) {
	k := NewKeplerian()
	// Sample across a full anomalistic month; lunar daily motion swings
	// between roughly 11.8 and 15.4 degrees per day.
	for d := 0.0; d < 28; d += 0.5 {
		smp, err := k.PositionAndSpeed(Moon, timeconv.J2000+d)
		if err != nil {
			t.Fatalf("moon sample at +%vd: %v", d, err)
		}
		if smp.Speed < 11 || smp.Speed > 16 {
			t.Errorf("moon speed at +%vd = %.4f°/d, want 11-16", d, smp.Speed)
		}
	}
}

// Mercury was retrograde through mid-August 2025 (stations Aug 9 and
// Aug 28); the model must show negative speed at the middle of the window.
func TestMercuryRetrogradeWindow(t *testing.T) {
	k := NewKeplerian()
	jd := timeconv.JulianDay(time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC))

	smp, err := k.PositionAndSpeed(Mercury, jd)
	if err != nil {
		t.Fatalf("PositionAndSpeed: %v", err)
	}
	if smp.Speed >= 0 {
		t.Errorf("mercury speed mid-retrograde = %.4f°/d, want negative", smp.Speed)
	}
}

func TestOuterPlanetsMoveSlowly(t *testing.T) {
	k := NewKeplerian()
	jd := timeconv.J2000 + 9000

	for _, id := range []int{Uranus, Neptune, Pluto} {
		smp, err := k.PositionAndSpeed(id, jd)
		if err != nil {
			t.Fatalf("object %d: %v", id, err)
		}
		if math.Abs(smp.Speed) > 0.1 {
			t.Errorf("object %d speed = %.4f°/d, want |speed| <= 0.1", id, smp.Speed)
		}
	}
}

func TestDeterminism(t *testing.T) {
	k := NewKeplerian()
	jd := timeconv.J2000 + 1234.5678
	a, err := k.PositionAndSpeed(Mars, jd)
	if err != nil {
		t.Fatal(err)
	}
	b, err := k.PositionAndSpeed(Mars, jd)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("repeated samples differ: %+v vs %+v", a, b)
	}
}

func BenchmarkKeplerianSample(b *testing.B) {
	k := NewKeplerian()
	for i := 0; i < b.N; i++ {
		if _, err := k.PositionAndSpeed(Mars, timeconv.J2000+float64(i%1000)); err != nil {
			b.Fatal(err)
		}
	}
}
