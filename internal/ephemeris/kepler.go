package ephemeris

import (
	"fmt"
	"math"

	"github.com/astro/zodigo/internal/angle"
	"github.com/astro/zodigo/internal/timeconv"
)

// elements holds J2000 heliocentric Keplerian elements and their
// per-Julian-century rates, from the JPL approximate-positions tables.
// Angles in degrees, semi-major axis in AU.
type elements struct {
	a, e, i, l, lp, n       float64
	da, de, di, dl, dlp, dn float64
}

var planetElements = map[int]elements{
	Mercury: {
		a: 0.38709843, e: 0.20563661, i: 7.00559432, l: 252.25166724, lp: 77.45771895, n: 48.33961819,
		da: 0.00000000, de: 0.00002123, di: -0.00590158, dl: 149472.67486623, dlp: 0.15940013, dn: -0.12214182,
	},
	Venus: {
		a: 0.72333566, e: 0.00677672, i: 3.39467605, l: 181.97970850, lp: 131.76755713, n: 76.67984255,
		da: 0.00000390, de: -0.00004107, di: -0.00078890, dl: 58517.81538729, dlp: 0.05679648, dn: -0.27769418,
	},
	Mars: {
		a: 1.52371034, e: 0.09339410, i: 1.84969142, l: -4.55343205, lp: -23.94362959, n: 49.55953891,
		da: 0.00001847, de: 0.00007882, di: -0.00813131, dl: 19140.30268499, dlp: 0.44441088, dn: -0.29257343,
	},
	Jupiter: {
		a: 5.20288700, e: 0.04838624, i: 1.30439695, l: 34.39644051, lp: 14.72847983, n: 100.47390909,
		da: -0.00011607, de: -0.00013253, di: -0.00183714, dl: 3034.74612775, dlp: 0.21252668, dn: 0.20469106,
	},
	Saturn: {
		a: 9.53667594, e: 0.05386179, i: 2.48599187, l: 49.95424423, lp: 92.59887831, n: 113.66242448,
		da: -0.00125060, de: -0.00050991, di: 0.00193609, dl: 1222.49362201, dlp: -0.41897216, dn: -0.28867794,
	},
	Uranus: {
		a: 19.18916464, e: 0.04725744, i: 0.77263783, l: 313.23810451, lp: 170.95427630, n: 74.01692503,
		da: -0.00196176, de: -0.00004397, di: -0.00242939, dl: 428.48202785, dlp: 0.40805281, dn: 0.04240589,
	},
	Neptune: {
		a: 30.06992276, e: 0.00859048, i: 1.77004347, l: -55.12002969, lp: 44.96476227, n: 131.78422574,
		da: 0.00026291, de: 0.00005105, di: 0.00035372, dl: 218.45945325, dlp: -0.32241464, dn: -0.00508664,
	},
	Pluto: {
		a: 39.48211675, e: 0.24882730, i: 17.14001206, l: 238.92903833, lp: 224.06891629, n: 110.30393684,
		da: -0.00031596, de: 0.00005170, di: 0.00004818, dl: 145.20780515, dlp: -0.04062942, dn: -0.01183482,
	},
}

// Earth-Moon barycenter elements, used to shift heliocentric positions to
// the geocentric frame.
var earthElements = elements{
	a: 1.00000261, e: 0.01671123, i: -0.00001531, l: 100.46457166, lp: 102.93768193, n: 0.0,
	da: 0.00000562, de: -0.00004392, di: -0.01294668, dl: 35999.37306329, dlp: 0.32327364, dn: 0.0,
}

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi

	// speedStep is the central-difference half-width for the speed channel.
	speedStep = 0.01 // days
)

// Keplerian is a built-in Oracle computing geocentric ecliptic longitudes
// from JPL approximate Keplerian elements, with the Sun taken as the
// anti-direction of the Earth-Moon barycenter and a truncated lunar series. Accuracy is arcminute-class for the
// planets and a fraction of a degree for the Moon — enough for diagnostics
// and coarse event finding, not for almanac work.
//
// Keplerian is pure and stateless; unlike most real ephemeris back-ends it
// is safe for concurrent use.
type Keplerian struct{}

// NewKeplerian returns the built-in Keplerian oracle.
func NewKeplerian() *Keplerian {
	return &Keplerian{}
}

// PositionAndSpeed implements Oracle. Speed is derived by central
// difference over the longitude channel.
func (k *Keplerian) PositionAndSpeed(objectID int, jd float64) (Sample, error) {
	lon, err := k.longitudeAt(objectID, jd)
	if err != nil {
		return Sample{}, err
	}
	before, err := k.longitudeAt(objectID, jd-speedStep)
	if err != nil {
		return Sample{}, err
	}
	after, err := k.longitudeAt(objectID, jd+speedStep)
	if err != nil {
		return Sample{}, err
	}
	speed := angle.Normalize(after-before) / (2 * speedStep)
	return Sample{Longitude: lon, Speed: speed}, nil
}

// longitudeAt returns the geocentric ecliptic longitude in [0, 360).
func (k *Keplerian) longitudeAt(objectID int, jd float64) (float64, error) {
	switch objectID {
	case Sun:
		ex, ey := heliocentric(earthElements, jd)
		return angle.Wrap360(math.Atan2(-ey, -ex) * rad2deg), nil
	case Moon:
		return moonLongitude(jd), nil
	default:
		el, ok := planetElements[objectID]
		if !ok {
			return 0, fmt.Errorf("ephemeris: no elements for object %d", objectID)
		}
		px, py := heliocentric(el, jd)
		ex, ey := heliocentric(earthElements, jd)
		return angle.Wrap360(math.Atan2(py-ey, px-ex) * rad2deg), nil
	}
}

// heliocentric returns the body's heliocentric ecliptic x/y in AU at jd.
// The z component is dropped: only longitude in the ecliptic plane matters.
func heliocentric(el elements, jd float64) (x, y float64) {
	T := (jd - timeconv.J2000) / 36525.0

	a := el.a + el.da*T
	e := el.e + el.de*T
	i := (el.i + el.di*T) * deg2rad
	l := el.l + el.dl*T
	lp := el.lp + el.dlp*T
	n := (el.n + el.dn*T) * deg2rad

	// Mean anomaly and argument of perihelion.
	m := angle.Normalize(l-lp) * deg2rad
	w := (lp)*deg2rad - n

	ecc := solveKepler(m, e)

	// Position in the orbital plane.
	xo := a * (math.Cos(ecc) - e)
	yo := a * math.Sqrt(1-e*e) * math.Sin(ecc)

	cw, sw := math.Cos(w), math.Sin(w)
	cn, sn := math.Cos(n), math.Sin(n)
	ci := math.Cos(i)

	x = (cw*cn-sw*sn*ci)*xo + (-sw*cn-cw*sn*ci)*yo
	y = (cw*sn+sw*cn*ci)*xo + (-sw*sn+cw*cn*ci)*yo
	return x, y
}

// solveKepler solves Kepler's equation M = E - e sin E for the eccentric
// anomaly by Newton iteration. Converges in a handful of steps for every
// planetary eccentricity; the iteration cap guards high-e pathologies.
func solveKepler(m, e float64) float64 {
	ecc := m + e*math.Sin(m)
	for iter := 0; iter < 20; iter++ {
		delta := (m - (ecc - e*math.Sin(ecc))) / (1 - e*math.Cos(ecc))
		ecc += delta
		if math.Abs(delta) < 1e-9 {
			break
		}
	}
	return ecc
}

// moonLongitude is a truncated lunar longitude series (main evection,
// variation, and annual-equation terms), good to roughly 0.3 degrees.
func moonLongitude(jd float64) float64 {
	d := jd - timeconv.J2000

	lp := 218.316 + 13.176396*d  // mean longitude
	ms := 357.529 + 0.98560028*d // solar mean anomaly
	mm := 134.963 + 13.064993*d  // lunar mean anomaly
	el := 297.850 + 12.190749*d  // mean elongation

	lon := lp +
		6.289*math.Sin(mm*deg2rad) +
		1.274*math.Sin((2*el-mm)*deg2rad) +
		0.658*math.Sin(2*el*deg2rad) -
		0.214*math.Sin(2*mm*deg2rad) -
		0.186*math.Sin(ms*deg2rad)

	return angle.Wrap360(lon)
}
