package catalogue

import (
	"github.com/passbi/transitcat/internal/geo"
	"github.com/passbi/transitcat/internal/models"
)

// curvatureEpsilon is the minimum geographic length for which curvature is
// considered defined (§4.2, §9): below it the field is simply omitted
// rather than risk emitting Inf or NaN.
const curvatureEpsilon = 1e-6

// GetBusStats computes §4.2's statistics block for a bus: stop counts,
// geographic length, road length and curvature. It returns !ok if the bus
// is not in the catalogue.
func (c *Catalogue) GetBusStats(name string) (models.BusStats, bool) {
	bus, ok := c.GetBus(name)
	if !ok {
		return models.BusStats{}, false
	}

	stats := models.BusStats{
		StopsOnRoute: bus.StopsOnRoute(),
		UniqueStops:  countUniqueStops(bus),
		GeoLength:    c.geoLength(bus),
		RoadLength:   c.roadLength(bus),
	}
	if stats.GeoLength > curvatureEpsilon {
		stats.Curvature = stats.RoadLength / stats.GeoLength
		stats.CurvatureValid = true
	}
	return stats, true
}

func countUniqueStops(bus models.Bus) int {
	seen := make(map[string]struct{}, len(bus.Route))
	for _, name := range bus.Route {
		seen[name] = struct{}{}
	}
	return len(seen)
}

// geoLength sums the great-circle distance between consecutive stops,
// traversed the same way the transfer graph traverses the route: once for
// a ring, forward then backward for a linear bus.
func (c *Catalogue) geoLength(bus models.Bus) float64 {
	forward := c.forwardGeoLength(bus.Route)
	if bus.Kind == models.Ring {
		return forward
	}
	// Great-circle distance is symmetric, so the backward pass over the
	// same stops contributes exactly the same total as the forward pass.
	return 2 * forward
}

func (c *Catalogue) forwardGeoLength(route []string) float64 {
	total := 0.0
	for i := 0; i+1 < len(route); i++ {
		from, ok1 := c.GetStop(route[i])
		to, ok2 := c.GetStop(route[i+1])
		if !ok1 || !ok2 {
			continue
		}
		total += geo.GreatCircle(from.Coord.Lat, from.Coord.Lng, to.Coord.Lat, to.Coord.Lng)
	}
	return total
}

// roadLength sums dist(·,·) with symmetric fallback between consecutive
// stops, traversed the same way as geoLength. For a linear bus the forward
// and backward passes are summed independently since the road distance
// table is asymmetric (§3 example scenario 3).
func (c *Catalogue) roadLength(bus models.Bus) float64 {
	route := bus.Route
	total := 0.0
	for i := 0; i+1 < len(route); i++ {
		total += c.Distance(route[i], route[i+1])
	}
	if bus.Kind == models.Linear {
		for i := 0; i+1 < len(route); i++ {
			total += c.Distance(route[i+1], route[i])
		}
	}
	return total
}
