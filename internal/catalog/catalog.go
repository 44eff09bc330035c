package catalog

import "strings"

// Catalog is the static activity reference dataset. It is built once at
// process start and safe for unlimited concurrent reads.
type Catalog struct {
	byDestination map[string][]Activity
	generic       []Activity
	destinations  []string
}

// Default builds the catalog from the built-in activity data.
func Default() *Catalog {
	byDest := make(map[string][]Activity)
	var dests []string
	for _, a := range destinationActivities {
		if _, ok := byDest[a.Destination]; !ok {
			dests = append(dests, a.Destination)
		}
		byDest[a.Destination] = append(byDest[a.Destination], a)
	}
	return &Catalog{
		byDestination: byDest,
		generic:       genericActivities,
		destinations:  dests,
	}
}

// DestinationKey normalizes a free-text destination to its catalog key:
// lowercased leading token before any comma, trimmed.
func DestinationKey(destination string) string {
	key := strings.ToLower(destination)
	if i := strings.Index(key, ","); i >= 0 {
		key = key[:i]
	}
	return strings.TrimSpace(key)
}

// ForDestination returns the activities for a destination key. The boolean
// reports whether the destination is known to the catalog.
func (c *Catalog) ForDestination(key string) ([]Activity, bool) {
	acts, ok := c.byDestination[key]
	return acts, ok
}

// Generic returns the fallback pool used when a destination is unknown.
// It is never empty.
func (c *Catalog) Generic() []Activity {
	return c.generic
}

// Destinations lists the known destination keys in declaration order.
func (c *Catalog) Destinations() []string {
	out := make([]string, len(c.destinations))
	copy(out, c.destinations)
	return out
}

// All returns every destination-keyed activity. Used by catalog sanity tests.
func (c *Catalog) All() []Activity {
	var out []Activity
	for _, key := range c.destinations {
		out = append(out, c.byDestination[key]...)
	}
	return out
}
