package search

import (
	"fmt"
	"time"

	"github.com/astro/zodigo/internal/metrics"
	"github.com/astro/zodigo/internal/timeconv"
)

// slopeStep is the central-difference half-width (days) used to estimate
// the speed channel's slope, since oracles expose no acceleration.
const slopeStep = 0.01

// StationQuery holds the parameters for a single station search.
type StationQuery struct {
	Object    string
	Start     time.Time
	Direction Direction
	MaxDays   float64 // 0 means 366
}

// StationRangeQuery holds the parameters for enumerating stations.
type StationRangeQuery struct {
	Object     string
	RangeStart time.Time
	RangeEnd   time.Time
	MaxResults int
}

// FindStation locates the next moment the object's angular speed crosses
// zero. Same machinery as FindCrossing with the speed channel as the
// objective: speed is not circular, so no wrap normalization or antipodal
// filtering applies, and the tolerance is read in degrees per day.
// Returns (nil, nil) when no station exists within MaxDays.
func (s *Searcher) FindStation(q StationQuery) (*Station, error) {
	id, ok := s.registry.Lookup(q.Object)
	if !ok {
		return nil, &UnknownObjectError{Object: q.Object}
	}
	maxDays := q.MaxDays
	if maxDays <= 0 {
		maxDays = 366
	}
	st, _, err := s.findStationJD(id, q.Object, timeconv.JulianDay(q.Start), q.Direction, maxDays)
	return st, err
}

// FindAllStations enumerates every station inside [RangeStart, RangeEnd],
// strictly ordered. The cursor jumps several days past each hit: speed
// lingers inside the exact-hit shortcut's band for days around a slow
// planet's station, and a small epsilon would rediscover the same root.
func (s *Searcher) FindAllStations(q StationRangeQuery) ([]Station, error) {
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

	var out []Station
	for cursor < endJD && len(out) < maxResults {
		st, jd, err := s.findStationJD(id, q.Object, cursor, Forward, endJD-cursor)
		if err != nil {
			return out, err
		}
		if st == nil || jd > endJD {
			break
		}
		out = append(out, *st)
		cursor = jd + s.config.StationCursorDays
	}
	return out, nil
}

func (s *Searcher) findStationJD(id int, name string, startJD float64, dir Direction, maxDays float64) (*Station, float64, error) {
	began := time.Now()

	speedAt := func(jd float64) (float64, error) {
		smp, err := s.oracle.PositionAndSpeed(id, jd)
		if err != nil {
			return 0, fmt.Errorf("oracle sample for %s: %w", name, err)
		}
		return smp.Speed, nil
	}

	span, err := findBracket(speedAt, startJD, dir, s.stepFor(id), maxDays, false)
	if err != nil {
		metrics.RecordSearch("station", "error", 0, time.Since(began))
		return nil, 0, err
	}
	if span == nil {
		metrics.RecordSearch("station", "not_found", 0, time.Since(began))
		s.logger.Debug("no station bracket within horizon",
			"object", name, "direction", dir.String(), "max_days", maxDays)
		return nil, 0, nil
	}

	eval := func(jd float64) (float64, float64, error) {
		v, err := speedAt(jd)
		if err != nil {
			return 0, 0, err
		}
		before, err := speedAt(jd - slopeStep)
		if err != nil {
			return 0, 0, err
		}
		after, err := speedAt(jd + slopeStep)
		if err != nil {
			return 0, 0, err
		}
		return v, (after - before) / (2 * slopeStep), nil
	}

	res, err := refine(eval, span, s.config.ToleranceDeg, s.config.MaxIterations)
	if err != nil {
		metrics.RecordSearch("station", "error", res.iterations, time.Since(began))
		return nil, 0, err
	}

	// The chronologically earlier endpoint carries the pre-station speed
	// sign: positive means the body is braking into retrograde.
	typ := TurningDirect
	if span.v1 > 0 {
		typ = TurningRetrograde
	}

	st := &Station{
		Time:      timeconv.Time(res.jd),
		Object:    name,
		ObjectID:  id,
		Type:      typ,
		Converged: res.converged,
	}

	if !res.converged {
		s.logger.Warn("station refinement exhausted iteration budget",
			"object", name, "achieved_speed", res.value, "iterations", res.iterations)
	}
	metrics.RecordSearch("station", "found", res.iterations, time.Since(began))
	s.logger.Debug("station found",
		"object", name, "time", st.Time.Format(time.RFC3339), "type", st.Type.String(),
		"iterations", res.iterations)

	return st, res.jd, nil
}
