package search

import (
	"math"
	"testing"
)

func evalFromFunc(f func(jd float64) float64, slope func(jd float64) float64) evaluator {
	return func(jd float64) (float64, float64, error) {
		return f(jd), slope(jd), nil
	}
}

func mustBracket(t *testing.T, f func(jd float64) float64, t1, t2 float64) *bracketSpan {
	t.Helper()
	span := &bracketSpan{t1: t1, t2: t2, v1: f(t1), v2: f(t2)}
	if span.v1*span.v2 >= 0 {
		t.Fatalf("test bracket [%v, %v] does not straddle a root", t1, t2)
	}
	return span
}

func TestRefineNewtonConverges(t *testing.T) {
	f := func(jd float64) float64 { return jd - 10.25 }
	slope := func(jd float64) float64 { return 1.0 }

	span := mustBracket(t, f, 10, 11)
	res, err := refine(evalFromFunc(f, slope), span, 1e-9, 50)
	if err != nil {
		t.Fatalf("refine: %v", err)
	}
	if !res.converged {
		t.Fatal("expected convergence")
	}
	if math.Abs(res.jd-10.25) > 1e-6 {
		t.Errorf("root = %v, want 10.25", res.jd)
	}
	if res.iterations > 5 {
		t.Errorf("linear function took %d iterations", res.iterations)
	}
}

func TestRefineBisectionFallback(t *testing.T) {
	// Slope below the usable threshold forces pure bisection.
	f := func(jd float64) float64 { return 0.005 * (jd - 7) }
	slope := func(jd float64) float64 { return 0.005 }

	span := mustBracket(t, f, 0, 20)
	res, err := refine(evalFromFunc(f, slope), span, 1e-9, 50)
	if err != nil {
		t.Fatalf("refine: %v", err)
	}
	if !res.converged {
		t.Fatal("expected convergence via bisection")
	}
	if math.Abs(res.jd-7) > 1e-4 {
		t.Errorf("root = %v, want 7", res.jd)
	}
}

func TestRefineMisleadingSlopeStaysInsideBracket(t *testing.T) {
	// A wildly overestimated slope produces creeping Newton steps that
	// never reach the root. The guarantees still hold: bounded iterations,
	// a result inside the original bracket, and a best estimate no worse
	// than the first sample.
	f := func(jd float64) float64 { return math.Tanh(jd - 12) }
	slope := func(jd float64) float64 { return 1000.0 }

	span := mustBracket(t, f, 11, 14)
	res, err := refine(evalFromFunc(f, slope), span, 1e-7, 50)
	if err != nil {
		t.Fatalf("refine: %v", err)
	}
	if res.jd < 11 || res.jd > 14 {
		t.Errorf("result %v escaped bracket [11, 14]", res.jd)
	}
	if res.iterations != 50 {
		t.Errorf("iterations = %d, want the full budget of 50", res.iterations)
	}
	if first := math.Abs(math.Tanh(12.5 - 12)); math.Abs(res.value) > first+1e-12 {
		t.Errorf("best value %v worse than first sample %v", res.value, first)
	}
}

func TestRefineExhaustionReturnsBestEstimate(t *testing.T) {
	f := func(jd float64) float64 { return jd - 10.25 }
	slope := func(jd float64) float64 { return 1.0 }

	span := mustBracket(t, f, 10, 11)
	res, err := refine(evalFromFunc(f, slope), span, 1e-15, 1)
	if err != nil {
		t.Fatalf("refine: %v", err)
	}
	if res.converged {
		t.Fatal("one iteration should not reach a 1e-15 tolerance")
	}
	if res.iterations != 1 {
		t.Errorf("iterations = %d, want 1", res.iterations)
	}
	if res.jd < 10 || res.jd > 11 {
		t.Errorf("best estimate %v outside bracket", res.jd)
	}
	if math.IsInf(res.value, 0) {
		t.Error("best value never recorded")
	}
}

func TestRefineNewtonStepClamped(t *testing.T) {
	// A tiny-but-usable slope yields Newton steps far beyond the ±15 day
	// clamp; the clamp and the bracket safeguard must both hold.
	f := func(jd float64) float64 { return 5 * math.Tanh(0.02*(jd-47)) }
	slope := func(jd float64) float64 { return 0.011 }

	span := mustBracket(t, f, 0, 100)
	res, err := refine(evalFromFunc(f, slope), span, 1e-6, 50)
	if err != nil {
		t.Fatalf("refine: %v", err)
	}
	if res.jd < 0 || res.jd > 100 {
		t.Errorf("result %v escaped bracket", res.jd)
	}
	if !res.converged {
		t.Errorf("expected convergence, achieved %v", res.value)
	}
	if math.Abs(res.jd-47) > 0.1 {
		t.Errorf("root = %v, want 47", res.jd)
	}
}
