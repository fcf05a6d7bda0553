// Package routing builds the transfer graph described in §3/§4.3 of the
// spec from a frozen catalogue, precomputes all-pairs shortest paths from
// every wait vertex, and answers itinerary queries against that
// precomputed state. The shape — a flat edge slice plus per-vertex
// adjacency lists of edge indices, explored with container/heap — follows
// the teacher's A* router in internal/routing/astar.go, generalized from a
// single on-demand search per query to the spec's eager per-source
// precomputation.
package routing

import "github.com/passbi/transitcat/internal/models"

// EdgeKind distinguishes the two kinds of transfer-graph edge. Per §9 of
// the spec this is a tagged record, not a type hierarchy: fields that
// don't apply to a given kind are simply left zero.
type EdgeKind int

const (
	WaitEdge EdgeKind = iota
	RideEdge
)

// Edge is one directed edge of the transfer graph.
type Edge struct {
	From, To  int
	Weight    float64
	Kind      EdgeKind
	StopName  string // valid for WaitEdge
	BusName   string // valid for RideEdge
	SpanCount int    // valid for RideEdge
}

const noEdge = -1

// toRouteItem converts an edge traversed on a shortest path into the
// itinerary leg the spec's find_route response describes (§4.3 step 5).
func (e Edge) toRouteItem() models.RouteItem {
	if e.Kind == WaitEdge {
		return models.RouteItem{Kind: models.Wait, StopName: e.StopName, Time: e.Weight}
	}
	return models.RouteItem{Kind: models.Ride, BusName: e.BusName, SpanCount: e.SpanCount, Time: e.Weight}
}
