package search

import (
	"math"
	"testing"
)

func linearObjective(root, slope float64) objective {
	return func(jd float64) (float64, error) {
		return (jd - root) * slope, nil
	}
}

func TestFindBracketForward(t *testing.T) {
	span, err := findBracket(linearObjective(10.3, 1), 0, Forward, 1, 30, true)
	if err != nil {
		t.Fatalf("findBracket: %v", err)
	}
	if span == nil {
		t.Fatal("expected a bracket")
	}
	if span.t1 >= span.t2 {
		t.Errorf("bracket not ordered: [%v, %v]", span.t1, span.t2)
	}
	if span.t1 > 10.3 || span.t2 < 10.3 {
		t.Errorf("bracket [%v, %v] does not contain root 10.3", span.t1, span.t2)
	}
	if span.v1*span.v2 >= 0 {
		t.Errorf("endpoint values %v, %v do not straddle zero", span.v1, span.v2)
	}
}

func TestFindBracketBackward(t *testing.T) {
	span, err := findBracket(linearObjective(10.3, 1), 20, Backward, 1, 30, true)
	if err != nil {
		t.Fatalf("findBracket: %v", err)
	}
	if span == nil {
		t.Fatal("expected a bracket")
	}
	// Chronological ordering holds regardless of search direction.
	if span.t1 >= span.t2 {
		t.Errorf("bracket not ordered: [%v, %v]", span.t1, span.t2)
	}
	if span.t1 > 10.3 || span.t2 < 10.3 {
		t.Errorf("bracket [%v, %v] does not contain root 10.3", span.t1, span.t2)
	}
}

func TestFindBracketHorizonExhausted(t *testing.T) {
	span, err := findBracket(linearObjective(100, 1), 0, Forward, 1, 30, true)
	if err != nil {
		t.Fatalf("findBracket: %v", err)
	}
	if span != nil {
		t.Errorf("expected no bracket within horizon, got [%v, %v]", span.t1, span.t2)
	}
}

func TestFindBracketExactHitShortcut(t *testing.T) {
	// A near-stationary objective that sits inside the exact-hit band for a
	// long span must still produce a tight bracket instead of walking the
	// whole horizon.
	f := func(jd float64) (float64, error) {
		return 0.00001 * (jd - 5), nil
	}
	span, err := findBracket(f, 5, Forward, 1, 1000, true)
	if err != nil {
		t.Fatalf("findBracket: %v", err)
	}
	if span == nil {
		t.Fatal("expected a synthetic bracket around the exact hit")
	}
	if width := span.t2 - span.t1; width > 3*tightHalfWidth {
		t.Errorf("synthetic bracket width %v, want <= %v", width, 2*tightHalfWidth)
	}
}

func TestFindBracketRejectsAntipodal(t *testing.T) {
	// The normalized error flips sign at the antipode with both endpoints
	// near ±180; a circular objective must reject it.
	f := func(jd float64) (float64, error) {
		v := 170 + jd // stand-in for Normalize(longitude - target)
		if v > 180 {
			v -= 360
		}
		return v, nil
	}
	span, err := findBracket(f, 0, Forward, 1, 30, true)
	if err != nil {
		t.Fatalf("findBracket: %v", err)
	}
	if span != nil {
		t.Errorf("antipodal flip accepted as bracket: [%v, %v] values %v, %v",
			span.t1, span.t2, span.v1, span.v2)
	}

	// The same flip on a non-circular objective is a genuine crossing.
	span, err = findBracket(f, 0, Forward, 1, 30, false)
	if err != nil {
		t.Fatalf("findBracket: %v", err)
	}
	if span == nil {
		t.Error("non-circular objective should accept the sign flip")
	}
}

func TestTightBracketStraddle(t *testing.T) {
	span, err := tightBracket(linearObjective(5, 1), 5)
	if err != nil {
		t.Fatalf("tightBracket: %v", err)
	}
	if math.Abs(span.t1-(5-tightHalfWidth)) > 1e-12 || math.Abs(span.t2-(5+tightHalfWidth)) > 1e-12 {
		t.Errorf("tight bracket = [%v, %v]", span.t1, span.t2)
	}
}
