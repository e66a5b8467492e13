package ephemeris

import "strings"

// Object identifiers for the bodies the built-in catalog knows.
const (
	Sun = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

// object is one catalog entry. maxDaily is the fastest plausible apparent
// daily motion in degrees per day; the searcher uses it to cap bracketing
// step sizes so a body cannot sweep past a target unseen.
type object struct {
	id       int
	name     string
	maxDaily float64
}

var catalogObjects = []object{
	{Sun, "sun", 1.03},
	{Moon, "moon", 15.5},
	{Mercury, "mercury", 2.3},
	{Venus, "venus", 1.3},
	{Mars, "mars", 0.95},
	{Jupiter, "jupiter", 0.25},
	{Saturn, "saturn", 0.14},
	{Uranus, "uranus", 0.07},
	{Neptune, "neptune", 0.05},
	{Pluto, "pluto", 0.05},
}

// Catalog resolves object names to internal identifiers.
// Immutable after construction; safe for concurrent use.
type Catalog struct {
	byName map[string]object
	byID   map[int]object
	ids    []int
}

// NewCatalog builds the built-in object-name registry.
func NewCatalog() *Catalog {
	c := &Catalog{
		byName: make(map[string]object, len(catalogObjects)),
		byID:   make(map[int]object, len(catalogObjects)),
	}
	for _, o := range catalogObjects {
		c.byName[o.name] = o
		c.byID[o.id] = o
		c.ids = append(c.ids, o.id)
	}
	return c
}

// Lookup resolves an object name (case-insensitive, surrounding whitespace
// ignored) to its identifier. The second return is false for unknown names.
func (c *Catalog) Lookup(name string) (int, bool) {
	o, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, false
	}
	return o.id, true
}

// Name returns the canonical name for an identifier, or "" if unknown.
func (c *Catalog) Name(id int) string {
	return c.byID[id].name
}

// MaxDailyMotion returns the fastest plausible daily motion for an object
// in degrees per day, or 0 if the object is unknown.
func (c *Catalog) MaxDailyMotion(id int) float64 {
	return c.byID[id].maxDaily
}

// IDs returns all known object identifiers in catalog order.
func (c *Catalog) IDs() []int {
	out := make([]int, len(c.ids))
	copy(out, c.ids)
	return out
}
