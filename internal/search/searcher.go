package search

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/astro/zodigo/internal/angle"
	"github.com/astro/zodigo/internal/ephemeris"
	"github.com/astro/zodigo/internal/metrics"
	"github.com/astro/zodigo/internal/timeconv"
)

// Registry resolves object names and bounds their plausible motion.
// The built-in implementation is ephemeris.Catalog.
type Registry interface {
	Lookup(name string) (int, bool)
	Name(id int) string
	MaxDailyMotion(id int) float64
}

// Searcher runs crossing and station searches against an injected oracle.
// It holds no mutable state between calls, so a Searcher is safe for
// concurrent use exactly when its Oracle is.
type Searcher struct {
	oracle   ephemeris.Oracle
	registry Registry
	config   Config
	logger   *slog.Logger
}

// NewSearcher creates a Searcher. A nil logger discards all log output.
func NewSearcher(oracle ephemeris.Oracle, registry Registry, config Config, logger *slog.Logger) *Searcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Searcher{
		oracle:   oracle,
		registry: registry,
		config:   config,
		logger:   logger,
	}
}

// CrossingQuery holds the parameters for a single crossing search.
// Zero values for MaxDays, Tolerance, and MaxIterations fall back to
// 366 days and the Searcher's Config.
type CrossingQuery struct {
	Object        string
	Target        float64 // degrees; wrapped mod 360
	Start         time.Time
	Direction     Direction
	MaxDays       float64
	Tolerance     float64
	MaxIterations int
}

// RangeQuery holds the parameters for enumerating crossings over a range.
type RangeQuery struct {
	Object     string
	Target     float64
	RangeStart time.Time
	RangeEnd   time.Time
	MaxResults int // 0 means the Config cap
}

// FindCrossing locates the next moment the object's longitude crosses the
// target, walking from Start in the query direction. Returns (nil, nil)
// when no crossing exists within MaxDays; the only errors are an unknown
// object name and oracle failures.
func (s *Searcher) FindCrossing(q CrossingQuery) (*Crossing, error) {
	id, ok := s.registry.Lookup(q.Object)
	if !ok {
		return nil, &UnknownObjectError{Object: q.Object}
	}

	maxDays := q.MaxDays
	if maxDays <= 0 {
		maxDays = 366
	}
	tol := q.Tolerance
	if tol <= 0 {
		tol = s.config.ToleranceDeg
	}
	maxIter := q.MaxIterations
	if maxIter <= 0 {
		maxIter = s.config.MaxIterations
	}

	c, _, err := s.findCrossingJD(id, q.Object, q.Target, timeconv.JulianDay(q.Start), q.Direction, maxDays, tol, maxIter)
	return c, err
}

// FindAllCrossings enumerates every crossing of the target inside
// [RangeStart, RangeEnd], strictly ordered and duplicate-free. The cursor
// advances a small epsilon past each hit so the same root is never
// rediscovered.
func (s *Searcher) FindAllCrossings(q RangeQuery) ([]Crossing, error) {
	id, ok := s.registry.Lookup(q.Object)
	if !ok {
		return nil, &UnknownObjectError{Object: q.Object}
	}

	maxResults := q.MaxResults
	if maxResults <= 0 {
		maxResults = s.config.MaxResults
	}

	endJD := timeconv.JulianDay(q.RangeEnd)
	cursor := timeconv.JulianDay(q.RangeStart)

	var out []Crossing
	for cursor < endJD && len(out) < maxResults {
		c, jd, err := s.findCrossingJD(id, q.Object, q.Target, cursor, Forward,
			endJD-cursor, s.config.ToleranceDeg, s.config.MaxIterations)
		if err != nil {
			return out, err
		}
		if c == nil || jd > endJD {
			break
		}
		out = append(out, *c)
		cursor = jd + s.config.CursorEpsilonDays
	}
	return out, nil
}

// findCrossingJD runs one bracket-then-refine search in Julian Day space.
// The returned float64 is the crossing's Julian Day, for enumeration cursors.
func (s *Searcher) findCrossingJD(id int, name string, target, startJD float64, dir Direction, maxDays, tol float64, maxIter int) (*Crossing, float64, error) {
	began := time.Now()
	target = angle.Wrap360(target)

	errAt := func(jd float64) (float64, error) {
		smp, err := s.oracle.PositionAndSpeed(id, jd)
		if err != nil {
			return 0, fmt.Errorf("oracle sample for %s: %w", name, err)
		}
		return angle.Normalize(smp.Longitude - target), nil
	}

	span, err := findBracket(errAt, startJD, dir, s.stepFor(id), maxDays, true)
	if err != nil {
		metrics.RecordSearch("crossing", "error", 0, time.Since(began))
		return nil, 0, err
	}
	if span == nil {
		metrics.RecordSearch("crossing", "not_found", 0, time.Since(began))
		s.logger.Debug("no crossing bracket within horizon",
			"object", name, "target", target, "direction", dir.String(), "max_days", maxDays)
		return nil, 0, nil
	}

	eval := func(jd float64) (float64, float64, error) {
		smp, err := s.oracle.PositionAndSpeed(id, jd)
		if err != nil {
			return 0, 0, fmt.Errorf("oracle sample for %s: %w", name, err)
		}
		return angle.Normalize(smp.Longitude - target), smp.Speed, nil
	}

	res, err := refine(eval, span, tol, maxIter)
	if err != nil {
		metrics.RecordSearch("crossing", "error", res.iterations, time.Since(began))
		return nil, 0, err
	}

	smp, err := s.oracle.PositionAndSpeed(id, res.jd)
	if err != nil {
		metrics.RecordSearch("crossing", "error", res.iterations, time.Since(began))
		return nil, 0, fmt.Errorf("oracle sample for %s: %w", name, err)
	}

	c := &Crossing{
		Time:          timeconv.Time(res.jd),
		Object:        name,
		ObjectID:      id,
		Longitude:     smp.Longitude,
		Speed:         smp.Speed,
		Retrograde:    smp.Speed < 0,
		AchievedError: math.Abs(res.value),
		Converged:     res.converged,
	}

	if !res.converged {
		s.logger.Warn("crossing refinement exhausted iteration budget",
			"object", name, "target", target, "achieved_error", c.AchievedError, "iterations", res.iterations)
	}
	metrics.RecordSearch("crossing", "found", res.iterations, time.Since(began))
	s.logger.Debug("crossing found",
		"object", name, "target", target, "time", c.Time.Format(time.RFC3339),
		"longitude", c.Longitude, "speed", c.Speed, "iterations", res.iterations)

	return c, res.jd, nil
}

// stepFor caps the bracketing step so the object cannot sweep more than 60
// degrees between samples, which keeps a fast body's genuine crossings away
// from the antipodal rejection cutoff.
func (s *Searcher) stepFor(id int) float64 {
	step := s.config.StepDays
	if m := s.registry.MaxDailyMotion(id); m > 0 {
		if limit := 60.0 / m; limit < step {
			step = limit
		}
	}
	return step
}
