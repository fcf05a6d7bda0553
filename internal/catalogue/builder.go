// Package catalogue owns the stop and bus tables, the asymmetric road
// distance table, and the derived stop→bus index described in §3 and §4.2
// of the spec. It follows the teacher's InMemoryGraph shape — a mutable
// aggregate built once, then handed off read-only — but replaces the
// teacher's sync.Once/pgxpool load step with an explicit Builder that is
// consumed by Freeze, per the build→freeze→serve lifecycle in §9.
package catalogue

import (
	"fmt"
	"sort"

	"github.com/passbi/transitcat/internal/models"
)

type pairKey struct {
	from, to string
}

// Builder accumulates stops, buses, distances and routing parameters
// during the build phase. It is not safe for concurrent use; the spec
// guarantees the build phase is single-threaded (§5).
type Builder struct {
	stops       map[string]models.Stop
	buses       map[string]models.Bus
	stopToBuses map[string][]string
	distances   map[pairKey]float64
	routing     models.RoutingParams

	warnings []string
	frozen   bool
}

// NewBuilder returns an empty Builder ready to accept stops, buses,
// distances and routing parameters in any order the caller's ingest phase
// produces them (distances may precede either endpoint, per §5).
func NewBuilder() *Builder {
	return &Builder{
		stops:       make(map[string]models.Stop),
		buses:       make(map[string]models.Bus),
		stopToBuses: make(map[string][]string),
		distances:   make(map[pairKey]float64),
	}
}

func (b *Builder) warn(format string, args ...interface{}) {
	b.warnings = append(b.warnings, fmt.Sprintf(format, args...))
}

// Warnings returns every non-fatal construction diagnostic recorded so
// far, in the order they occurred.
func (b *Builder) Warnings() []string {
	return b.warnings
}

// AddStop inserts a stop. A duplicate name is a construction error that is
// tolerated per §4.2: the record is kept, last write wins, and a warning
// is recorded rather than aborting the whole ingest.
func (b *Builder) AddStop(name string, coord models.Coordinate) {
	if b.frozen {
		panic("catalogue: AddStop called after Freeze")
	}
	if name == "" {
		b.warn("ignoring stop with empty name")
		return
	}
	if _, exists := b.stops[name]; exists {
		b.warn("duplicate stop %q: keeping last write", name)
	}
	b.stops[name] = models.Stop{Name: name, Coord: coord}
}

// SetDistance records an ordered-pair road distance. It may be called
// before either endpoint stop has been added. The pair is never checked
// against the stop table, neither here nor at Freeze: an entry naming an
// unknown stop is kept and is simply never looked up by a route.
func (b *Builder) SetDistance(from, to string, meters float64) {
	if b.frozen {
		panic("catalogue: SetDistance called after Freeze")
	}
	b.distances[pairKey{from, to}] = meters
}

// AddBus inserts a bus. A route referencing an unknown stop is a
// referential error (§7, kind 2): the bus is dropped in its entirety and a
// warning is recorded, without poisoning stops or buses already accepted.
func (b *Builder) AddBus(name string, route []string, kind models.BusKind) {
	if b.frozen {
		panic("catalogue: AddBus called after Freeze")
	}
	if name == "" {
		b.warn("ignoring bus with empty name")
		return
	}
	for _, stopName := range route {
		if _, ok := b.stops[stopName]; !ok {
			b.warn("bus %q references unknown stop %q: dropping bus", name, stopName)
			return
		}
	}
	if _, exists := b.buses[name]; exists {
		b.warn("duplicate bus %q: keeping last write", name)
		b.removeFromStopIndex(name)
	}
	b.buses[name] = models.Bus{Name: name, Route: append([]string(nil), route...), Kind: kind}

	seen := make(map[string]bool, len(route))
	for _, stopName := range route {
		if seen[stopName] {
			continue
		}
		seen[stopName] = true
		b.insertSorted(stopName, name)
	}
}

func (b *Builder) removeFromStopIndex(busName string) {
	for stop, buses := range b.stopToBuses {
		filtered := buses[:0]
		for _, name := range buses {
			if name != busName {
				filtered = append(filtered, name)
			}
		}
		b.stopToBuses[stop] = filtered
	}
}

func (b *Builder) insertSorted(stop, bus string) {
	buses := b.stopToBuses[stop]
	i := sort.SearchStrings(buses, bus)
	buses = append(buses, "")
	copy(buses[i+1:], buses[i:])
	buses[i] = bus
	b.stopToBuses[stop] = buses
}

// SetRouting records the global wait time and cruising velocity. Callers
// are expected to have validated wait_time >= 0 and velocity > 0 before
// this point (internal/decode does so with struct-tag validation); Freeze
// does not re-derive a graph from invalid parameters.
func (b *Builder) SetRouting(waitMinutes, velocityKMH float64) {
	if b.frozen {
		panic("catalogue: SetRouting called after Freeze")
	}
	b.routing = models.RoutingParams{WaitTimeMinutes: waitMinutes, VelocityKMH: velocityKMH}
}

// StopCount returns the number of stops added so far.
func (b *Builder) StopCount() int {
	return len(b.stops)
}

// BusCount returns the number of buses accepted so far.
func (b *Builder) BusCount() int {
	return len(b.buses)
}

// Freeze consumes the builder and returns an immutable Catalogue. The
// builder must not be used again afterwards; every further mutating call
// panics, which is the Go idiom for the spec's "mutation interface
// inaccessible once the graph is built" requirement (§9).
func (b *Builder) Freeze() *Catalogue {
	b.frozen = true
	return &Catalogue{
		stops:       b.stops,
		buses:       b.buses,
		stopToBuses: b.stopToBuses,
		distances:   b.distances,
		routing:     b.routing,
	}
}
