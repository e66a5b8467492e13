// Package angle provides normalization helpers for ecliptic angles.
package angle

import "math"

// Normalize reduces an angular difference to the canonical signed range
// [-180, 180). Periodic under full turns: Normalize(x) == Normalize(x+360k)
// for any integer k. The boundary folds down, so Normalize(180) == -180.
func Normalize(delta float64) float64 {
	d := math.Mod(delta+180, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}

// Wrap360 reduces a longitude to [0, 360).
func Wrap360(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	return lon
}
