package routing

import (
	"sort"

	"github.com/passbi/transitcat/internal/catalogue"
	"github.com/passbi/transitcat/internal/models"
)

// Graph is the transfer graph built from a frozen catalogue: two vertices
// per stop (wait, board) plus the wait and ride edges described in §3.
// Once Build returns, a Graph never changes again.
type Graph struct {
	stopIndex   map[string]int
	indexToStop []string
	edges       []Edge
	adjacency   [][]int // vertex -> edge indices
	vertexCount int

	// distFrom[stopIdx][vertex] and prevEdgeFrom[stopIdx][vertex] are the
	// precomputed single-source shortest path trees rooted at each wait
	// vertex, per §4.3.
	distFrom     [][]float64
	prevEdgeFrom [][]int
}

// WaitVertex returns the wait-state vertex for the stop at the given dense
// index.
func WaitVertex(stopIdx int) int { return 2 * stopIdx }

// BoardVertex returns the board-state vertex for the stop at the given
// dense index.
func BoardVertex(stopIdx int) int { return 2*stopIdx + 1 }

// Build constructs the transfer graph from a frozen catalogue and
// precomputes all-pairs shortest paths. This is the one potentially
// expensive step in the system's lifecycle (§5); it runs once, before any
// query is served.
func Build(cat *catalogue.Catalogue) *Graph {
	g := &Graph{
		stopIndex: make(map[string]int, cat.StopCount()),
	}

	var names []string
	cat.Stops(func(s models.Stop) { names = append(names, s.Name) })
	sort.Strings(names)

	g.indexToStop = names
	for i, name := range names {
		g.stopIndex[name] = i
	}

	g.vertexCount = 2 * len(names)
	g.adjacency = make([][]int, g.vertexCount)

	waitMinutes := cat.RoutingParams().WaitTimeMinutes
	for i := range names {
		g.addEdge(Edge{
			From:     WaitVertex(i),
			To:       BoardVertex(i),
			Weight:   waitMinutes,
			Kind:     WaitEdge,
			StopName: names[i],
		})
	}

	speed := cat.RoutingParams().SpeedMetersPerMinute()
	for _, bus := range cat.BusesSorted() {
		g.addRideEdges(cat, bus, speed)
	}

	g.precomputeAll()
	return g
}

func (g *Graph) addEdge(e Edge) {
	id := len(g.edges)
	g.edges = append(g.edges, e)
	g.adjacency[e.From] = append(g.adjacency[e.From], id)
}

// addRideEdges emits one ride edge for every ordered pair (i, j), i < j,
// in the bus's traversal, per §3. For a linear bus the forward and
// reverse traversals are emitted independently, each consulting the
// directed distance table in that direction.
func (g *Graph) addRideEdges(cat *catalogue.Catalogue, bus models.Bus, speed float64) {
	g.addRideEdgesOneDirection(cat, bus.Name, bus.Route, speed)
	if bus.Kind == models.Linear {
		g.addRideEdgesOneDirection(cat, bus.Name, reversed(bus.Route), speed)
	}
}

func (g *Graph) addRideEdgesOneDirection(cat *catalogue.Catalogue, busName string, route []string, speed float64) {
	for i := 0; i < len(route); i++ {
		fromIdx, ok := g.stopIndex[route[i]]
		if !ok {
			continue
		}
		accumulated := 0.0
		for j := i + 1; j < len(route); j++ {
			accumulated += cat.Distance(route[j-1], route[j])
			toIdx, ok := g.stopIndex[route[j]]
			if !ok {
				continue
			}
			g.addEdge(Edge{
				From:      BoardVertex(fromIdx),
				To:        WaitVertex(toIdx),
				Weight:    accumulated / speed,
				Kind:      RideEdge,
				BusName:   busName,
				SpanCount: j - i,
			})
		}
	}
}

func reversed(route []string) []string {
	out := make([]string, len(route))
	for i, s := range route {
		out[len(route)-1-i] = s
	}
	return out
}

// StopIndex returns the dense index assigned to a stop name, or !ok if the
// stop is unknown to the graph.
func (g *Graph) StopIndex(name string) (int, bool) {
	idx, ok := g.stopIndex[name]
	return idx, ok
}

// VertexCount returns |V| = 2*|Stops|.
func (g *Graph) VertexCount() int { return g.vertexCount }

// EdgeCount returns the number of edges built.
func (g *Graph) EdgeCount() int { return len(g.edges) }
