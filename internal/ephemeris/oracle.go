// Package ephemeris supplies ecliptic longitude and speed samples for
// solar-system bodies, and the object-name registry that identifies them.
package ephemeris

// Sample is one oracle reading: geocentric ecliptic longitude in degrees,
// always in [0, 360), and its rate of change in degrees per day. Negative
// speed means apparent retrograde motion.
type Sample struct {
	Longitude float64
	Speed     float64
}

// Oracle supplies position and speed for an object at a Julian Day.
//
// Implementations must be deterministic and side-effect free: the same
// (objectID, jd) pair always yields the same Sample. They are not required
// to be safe for concurrent use — many real ephemeris back-ends keep
// internal fixed-point caches — so callers fanning searches out across
// goroutines must construct one Oracle per goroutine unless the
// implementation documents otherwise.
type Oracle interface {
	PositionAndSpeed(objectID int, jd float64) (Sample, error)
}
