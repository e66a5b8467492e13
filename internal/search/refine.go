package search

import "math"

// evaluator samples the objective and its time-derivative at a Julian Day.
type evaluator func(jd float64) (value, slope float64, err error)

const (
	// minUsableSlope is the slope magnitude (deg/day) below which a Newton
	// step is untrustworthy and the refiner bisects instead.
	minUsableSlope = 0.01

	// maxNewtonStep clamps a single Newton step (days) against pathological
	// extrapolation from very fast or very slow bodies.
	maxNewtonStep = 15.0
)

// refineResult is the outcome of a refinement run.
type refineResult struct {
	jd         float64
	value      float64 // achieved objective value at jd
	iterations int
	converged  bool
}

// refine converges on the root inside span using safeguarded Newton-Raphson
// with a bisection fallback. The bracket is tightened every iteration by
// replacing whichever endpoint shares the current sample's sign, so it never
// expands and the returned time always lies inside the original span. On
// exhausting maxIter the best estimate seen is returned with converged set
// to false rather than an error.
func refine(f evaluator, span *bracketSpan, tolerance float64, maxIter int) (refineResult, error) {
	t1, t2 := span.t1, span.t2
	v1 := span.v1

	t := (t1 + t2) / 2
	best := refineResult{jd: t, value: math.Inf(1)}

	for i := 0; i < maxIter; i++ {
		v, slope, err := f(t)
		if err != nil {
			return best, err
		}

		best.iterations = i + 1
		if math.Abs(v) < math.Abs(best.value) {
			best.jd, best.value = t, v
		}

		if math.Abs(v) < tolerance {
			best.converged = true
			return best, nil
		}

		// Tighten the bracket around the root before moving on.
		if (v > 0) == (v1 > 0) {
			t1, v1 = t, v
		} else {
			t2 = t
		}

		var next float64
		if math.Abs(slope) > minUsableSlope {
			dt := -v / slope
			if dt > maxNewtonStep {
				dt = maxNewtonStep
			} else if dt < -maxNewtonStep {
				dt = -maxNewtonStep
			}
			next = t + dt
			if next <= t1 || next >= t2 {
				// Newton left the tightened bracket; bisect instead.
				next = (t1 + t2) / 2
			}
		} else {
			next = (t1 + t2) / 2
		}
		t = next
	}

	return best, nil
}
