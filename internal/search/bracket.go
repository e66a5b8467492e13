package search

import "math"

// objective samples the function being driven to zero at a Julian Day.
type objective func(jd float64) (float64, error)

const (
	// exactHitDeg short-circuits the sweep: a sample this close to zero is
	// treated as the root itself, which also keeps very slow bodies from
	// needing an enormous number of steps.
	exactHitDeg = 0.001

	// antipodalCutoff rejects sign flips whose endpoints sit near the
	// antipode: a body sweeping past target+180 flips the normalized error
	// sign just like a genuine crossing does.
	antipodalCutoff = 90.0

	// tightHalfWidth is the synthetic bracket half-width (days) placed
	// around an exact hit.
	tightHalfWidth = 0.01
)

// bracketSpan is a chronologically ordered interval known to contain one
// genuine root, with the objective values at its endpoints.
type bracketSpan struct {
	t1, t2 float64
	v1, v2 float64
}

// findBracket sweeps f from start in even steps of stepDays, walking in the
// given direction for at most maxDays, and returns an interval containing
// exactly one genuine root. circular enables the antipodal rejection filter,
// which applies to wrapped longitude errors but not to the speed channel.
// Returns (nil, nil) when the horizon is exhausted without a valid bracket.
func findBracket(f objective, start float64, dir Direction, stepDays, maxDays float64, circular bool) (*bracketSpan, error) {
	step := stepDays
	if dir == Backward {
		step = -step
	}

	prevT := start
	prevV, err := f(prevT)
	if err != nil {
		return nil, err
	}
	if math.Abs(prevV) < exactHitDeg {
		return tightBracket(f, prevT)
	}

	for elapsed := stepDays; elapsed <= maxDays+1e-9; elapsed += stepDays {
		t := prevT + step
		v, err := f(t)
		if err != nil {
			return nil, err
		}

		if math.Abs(v) < exactHitDeg {
			return tightBracket(f, t)
		}

		if prevV*v < 0 {
			genuine := !circular ||
				(math.Abs(prevV) < antipodalCutoff && math.Abs(v) < antipodalCutoff)
			if genuine {
				if t < prevT {
					return &bracketSpan{t1: t, t2: prevT, v1: v, v2: prevV}, nil
				}
				return &bracketSpan{t1: prevT, t2: t, v1: prevV, v2: v}, nil
			}
		}

		prevT, prevV = t, v
	}

	return nil, nil
}

// tightBracket builds the synthetic bracket around an exact hit.
func tightBracket(f objective, t float64) (*bracketSpan, error) {
	t1, t2 := t-tightHalfWidth, t+tightHalfWidth
	v1, err := f(t1)
	if err != nil {
		return nil, err
	}
	v2, err := f(t2)
	if err != nil {
		return nil, err
	}
	return &bracketSpan{t1: t1, t2: t2, v1: v1, v2: v2}, nil
}
