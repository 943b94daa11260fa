package routeplanner

import (
	"container/heap"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/stationgraph"
)

// PathHop is one traversed edge of a raw solver path, with its resolved
// weight (live when available, static otherwise).
type PathHop struct {
	Edge    *stationgraph.Edge
	Minutes float64
}

// Path is a raw solver result: the origin plus the inbound edge per hop.
type Path struct {
	Origin string
	Hops   []PathHop

	TotalMinutes float64
}

// IntermediateStations returns the station ids strictly between origin and
// destination.
func (p *Path) IntermediateStations() map[string]bool {
	intermediates := map[string]bool{}

	for position, hop := range p.Hops {
		if position == len(p.Hops)-1 {
			break
		}
		intermediates[hop.Edge.To] = true
	}

	return intermediates
}

// SolveOptions constrain a single solver run.
type SolveOptions struct {
	// Avoid excludes stations from relaxation entirely.
	Avoid map[string]bool

	// RequireAccessible skips edges whose destination node is inaccessible.
	RequireAccessible bool

	// LiveMinutes overrides static edge weights per edge key.
	LiveMinutes map[stationgraph.EdgeKey]float64
}

// Solve runs Dijkstra from one station to another over the built graph.
// Returns nil when either endpoint is unknown or no path satisfies the
// constraints.
//
// Among frontier nodes with equal tentative distance the pop order is
// arbitrary (heap order, which follows insertion). Routes with tied costs may
// therefore differ between topologically equal graphs; total minutes never do.
func Solve(graph *stationgraph.Graph, fromID string, toID string, options SolveOptions) *Path {
	if graph.Node(fromID) == nil || graph.Node(toID) == nil {
		return nil
	}

	distances := map[string]float64{fromID: 0}
	previous := map[string]PathHop{}
	visited := map[string]bool{}

	frontier := &minuteHeap{{stationID: fromID, minutes: 0}}
	heap.Init(frontier)

	for frontier.Len() > 0 {
		item := heap.Pop(frontier).(frontierItem)

		if visited[item.stationID] {
			// Stale duplicate from the lazy decrease-key strategy
			continue
		}
		visited[item.stationID] = true

		if item.stationID == toID {
			break
		}

		for _, edge := range graph.EdgesFrom(item.stationID) {
			if visited[edge.To] {
				continue
			}
			if options.Avoid[edge.To] {
				continue
			}
			if options.RequireAccessible && !graph.Node(edge.To).Accessible {
				continue
			}

			minutes := resolveMinutes(edge, options.LiveMinutes)
			tentative := item.minutes + minutes

			if known, exists := distances[edge.To]; !exists || tentative < known {
				distances[edge.To] = tentative
				previous[edge.To] = PathHop{Edge: edge, Minutes: minutes}

				heap.Push(frontier, frontierItem{stationID: edge.To, minutes: tentative})
			}
		}
	}

	if !visited[toID] {
		return nil
	}

	return reconstruct(fromID, toID, previous)
}

func resolveMinutes(edge *stationgraph.Edge, live map[stationgraph.EdgeKey]float64) float64 {
	if minutes, exists := live[edge.Key()]; exists {
		return minutes
	}

	return edge.EstimatedMinutes
}

func reconstruct(fromID string, toID string, previous map[string]PathHop) *Path {
	var reversed []PathHop

	for at := toID; at != fromID; {
		hop := previous[at]
		reversed = append(reversed, hop)
		at = hop.Edge.From
	}

	path := &Path{Origin: fromID}

	total := 0.0
	for position := len(reversed) - 1; position >= 0; position-- {
		path.Hops = append(path.Hops, reversed[position])
		total += reversed[position].Minutes
	}
	path.TotalMinutes = stationgraph.RoundMinutes(total)

	return path
}

type frontierItem struct {
	stationID string
	minutes   float64
}

type minuteHeap []frontierItem

func (h minuteHeap) Len() int            { return len(h) }
func (h minuteHeap) Less(i, j int) bool  { return h[i].minutes < h[j].minutes }
func (h minuteHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minuteHeap) Push(x interface{}) { *h = append(*h, x.(frontierItem)) }
func (h *minuteHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
