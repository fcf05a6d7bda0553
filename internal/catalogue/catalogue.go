package catalogue

import (
	"sort"

	"github.com/passbi/transitcat/internal/models"
)

// StopBusesStatus distinguishes the three outcomes of a stop→bus lookup
// (§4.2): the stop itself may not exist, it may exist with no buses, or it
// may carry an ordered, non-empty set of bus names.
type StopBusesStatus int

const (
	StopNotFound StopBusesStatus = iota
	StopNoBuses
	StopHasBuses
)

// Catalogue is the frozen, read-only snapshot produced by Builder.Freeze.
// Every method is a pure read and, per §5 phase 3, safe to call from any
// number of goroutines without further synchronization, since nothing it
// holds is ever mutated again.
type Catalogue struct {
	stops       map[string]models.Stop
	buses       map[string]models.Bus
	stopToBuses map[string][]string
	distances   map[pairKey]float64
	routing     models.RoutingParams
}

// GetStop returns the stop with the given name, or !ok if none exists.
func (c *Catalogue) GetStop(name string) (models.Stop, bool) {
	s, ok := c.stops[name]
	return s, ok
}

// GetBus returns the bus with the given name, or !ok if none exists.
func (c *Catalogue) GetBus(name string) (models.Bus, bool) {
	b, ok := c.buses[name]
	return b, ok
}

// GetStopBuses returns the bus names serving a stop, ordered by name.
func (c *Catalogue) GetStopBuses(name string) (StopBusesStatus, []string) {
	if _, ok := c.stops[name]; !ok {
		return StopNotFound, nil
	}
	buses := c.stopToBuses[name]
	if len(buses) == 0 {
		return StopNoBuses, nil
	}
	return StopHasBuses, buses
}

// Distance implements the directed lookup with symmetric fallback from §3:
// prefer the (from, to) entry, fall back to (to, from), otherwise 0.
func (c *Catalogue) Distance(from, to string) float64 {
	if d, ok := c.distances[pairKey{from, to}]; ok {
		return d
	}
	if d, ok := c.distances[pairKey{to, from}]; ok {
		return d
	}
	return 0
}

// RoutingParams returns the global wait time and cruising velocity.
func (c *Catalogue) RoutingParams() models.RoutingParams {
	return c.routing
}

// StopCount returns the number of stops in the catalogue.
func (c *Catalogue) StopCount() int {
	return len(c.stops)
}

// BusCount returns the number of buses in the catalogue.
func (c *Catalogue) BusCount() int {
	return len(c.buses)
}

// Stops calls fn once for every stop, in no particular order. Callers that
// need a stable order (the transfer graph builder assigning dense indices)
// should sort the result themselves.
func (c *Catalogue) Stops(fn func(models.Stop)) {
	for _, s := range c.stops {
		fn(s)
	}
}

// BusesSorted returns every bus ordered lexicographically by name, the
// iteration order the map renderer requires (§4.4) for deterministic
// palette assignment.
func (c *Catalogue) BusesSorted() []models.Bus {
	names := make([]string, 0, len(c.buses))
	for name := range c.buses {
		names = append(names, name)
	}
	sort.Strings(names)

	buses := make([]models.Bus, 0, len(names))
	for _, name := range names {
		buses = append(buses, c.buses[name])
	}
	return buses
}
