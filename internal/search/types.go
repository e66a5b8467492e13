// Package search locates the exact moments at which a body's ecliptic
// longitude, or its angular speed, crosses a target value. It drives an
// injected ephemeris oracle through a coarse bracketing sweep and a
// safeguarded Newton/bisection refinement, and underlies ingress, aspect,
// and station detection.
package search

import "time"

// Direction selects which way a search walks from its start time.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Crossing is the moment a body's longitude reached a target value.
// Immutable; constructed fresh per query.
type Crossing struct {
	Time       time.Time
	Object     string
	ObjectID   int
	Longitude  float64 // degrees, [0, 360)
	Speed      float64 // degrees per day at Time
	Retrograde bool    // Speed < 0

	// AchievedError is |Normalize(Longitude - target)| at Time. It only
	// exceeds the requested tolerance when Converged is false.
	AchievedError float64
	Converged     bool
}

// StationType classifies a station by the direction of the speed sign flip.
type StationType int

const (
	// TurningRetrograde marks speed passing from positive to negative.
	TurningRetrograde StationType = iota
	// TurningDirect marks speed passing from negative to positive.
	TurningDirect
)

func (s StationType) String() string {
	if s == TurningDirect {
		return "turning-direct"
	}
	return "turning-retrograde"
}

// Station is the moment a body's angular speed crossed zero.
type Station struct {
	Time      time.Time
	Object    string
	ObjectID  int
	Type      StationType
	Converged bool
}

// Config holds search tuning shared by all queries on a Searcher.
type Config struct {
	StepDays          float64 // coarse bracketing step
	ToleranceDeg      float64 // convergence tolerance (degrees, or deg/day for stations)
	MaxIterations     int     // refinement iteration budget
	MaxResults        int     // enumeration safety cap
	CursorEpsilonDays float64 // enumeration cursor advance past a found crossing

	// StationCursorDays is the enumeration advance past a found station.
	// Larger than CursorEpsilonDays because speed lingers near zero for
	// days around a slow planet's station.
	StationCursorDays float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		StepDays:          1.0,
		ToleranceDeg:      1e-4,
		MaxIterations:     50,
		MaxResults:        100,
		CursorEpsilonDays: 0.1,
		StationCursorDays: 5.0,
	}
}
