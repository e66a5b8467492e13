// Package timeconv converts between calendar datetimes and Julian Day
// numbers, the continuous time scale the search engine works in.
package timeconv

import (
	"math"
	"time"
)

// J2000 is the Julian Day of the J2000.0 epoch (January 1, 2000, 12:00:00).
const J2000 = 2451545.0

// JulianDay converts a time.Time (UTC) to a Julian Day number.
// Uses the standard astronomical algorithm valid for dates after March 1, 4801 BC.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())
	h := float64(t.Hour())
	min := float64(t.Minute())
	s := float64(t.Second()) + float64(t.Nanosecond())/1e9

	// Adjust year/month for Jan/Feb (treat as months 13/14 of previous year).
	if m <= 2 {
		y -= 1
		m += 12
	}

	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + d + B - 1524.5
	jd += (h + min/60.0 + s/3600.0) / 24.0

	return jd
}

// Time converts a Julian Day number back to a UTC time.Time.
// Inverse of JulianDay; round trips are stable to well under a millisecond,
// which bounds the precision of any time returned by a search.
func Time(jd float64) time.Time {
	z := math.Floor(jd + 0.5)
	f := jd + 0.5 - z

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := b - d - math.Floor(30.6001*e)
	month := e - 1
	if e >= 14 {
		month = e - 13
	}
	year := c - 4716
	if month <= 2 {
		year = c - 4715
	}

	midnight := time.Date(int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC)
	return midnight.Add(time.Duration(math.Round(f * 86400 * 1e9)))
}

// DaysSinceJ2000 returns the number of days between t and the J2000.0 epoch.
func DaysSinceJ2000(t time.Time) float64 {
	return JulianDay(t) - J2000
}
