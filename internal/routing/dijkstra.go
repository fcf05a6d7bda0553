package routing

import (
	"container/heap"
	"math"

	"github.com/passbi/transitcat/internal/models"
)

// precomputeAll runs one non-decreasing-key Dijkstra per stop, rooted at
// that stop's wait vertex, and stores the resulting distance and
// predecessor-edge arrays. This is the §4.3 precomputation: O(|Stops| *
// (|V|+|E|) log|V|) total, done once before any query is served.
func (g *Graph) precomputeAll() {
	n := len(g.indexToStop)
	g.distFrom = make([][]float64, n)
	g.prevEdgeFrom = make([][]int, n)

	for si := 0; si < n; si++ {
		dist, prevEdge := g.dijkstraFrom(WaitVertex(si))
		g.distFrom[si] = dist
		g.prevEdgeFrom[si] = prevEdge
	}
}

type pqItem struct {
	dist   float64
	vertex int
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// dijkstraFrom runs single-source Dijkstra from the given start vertex,
// settling vertices by lazy deletion: a popped (d, v) with d > dist[v] is
// stale and skipped rather than removed from the heap up front.
func (g *Graph) dijkstraFrom(start int) ([]float64, []int) {
	dist := make([]float64, g.vertexCount)
	prevEdge := make([]int, g.vertexCount)
	for v := range dist {
		dist[v] = math.Inf(1)
		prevEdge[v] = noEdge
	}
	dist[start] = 0

	pq := &priorityQueue{{dist: 0, vertex: start}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(pqItem)
		if top.dist > dist[top.vertex] {
			continue
		}
		for _, edgeID := range g.adjacency[top.vertex] {
			e := g.edges[edgeID]
			nd := dist[top.vertex] + e.Weight
			if nd < dist[e.To] {
				dist[e.To] = nd
				prevEdge[e.To] = edgeID
				heap.Push(pq, pqItem{dist: nd, vertex: e.To})
			}
		}
	}

	return dist, prevEdge
}

// FindRoute answers an itinerary query per §4.3: unknown endpoints and
// unreachable destinations both surface as !Found, with no distinction
// visible to the caller (§7, kind 4).
func (g *Graph) FindRoute(from, to string) models.RouteResult {
	fromIdx, ok := g.stopIndex[from]
	if !ok {
		return models.RouteResult{}
	}
	toIdx, ok := g.stopIndex[to]
	if !ok {
		return models.RouteResult{}
	}
	if from == to {
		return models.RouteResult{Found: true, Items: []models.RouteItem{}}
	}

	dist := g.distFrom[fromIdx]
	prevEdge := g.prevEdgeFrom[fromIdx]

	waitFinish := WaitVertex(toIdx)
	boardFinish := BoardVertex(toIdx)
	finish := waitFinish
	if dist[boardFinish] < dist[waitFinish] {
		finish = boardFinish
	}

	if math.IsInf(dist[finish], 1) {
		return models.RouteResult{}
	}

	var edgeChain []Edge
	for v := finish; prevEdge[v] != noEdge; {
		e := g.edges[prevEdge[v]]
		edgeChain = append(edgeChain, e)
		v = e.From
	}

	items := make([]models.RouteItem, len(edgeChain))
	for i, e := range edgeChain {
		items[len(edgeChain)-1-i] = e.toRouteItem()
	}

	return models.RouteResult{Found: true, TotalTime: dist[finish], Items: items}
}
