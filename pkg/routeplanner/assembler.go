package routeplanner

import (
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/stationgraph"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/subway"
)

// AssembleRoute converts a raw solver path into an annotated route. The route
// goes not-fully-accessible the moment any traversed destination node is
// inaccessible, and that station lands in BlockedStations with its outage
// reason when one is determinable.
func AssembleRoute(graph *stationgraph.Graph, path *Path) *subway.AccessibleRoute {
	route := &subway.AccessibleRoute{
		Segments:        []subway.RouteSegment{},
		FullyAccessible: true,
	}

	total := 0.0

	for _, hop := range path.Hops {
		edge := hop.Edge

		fromNode := graph.Node(edge.From)
		toNode := graph.Node(edge.To)

		route.Segments = append(route.Segments, subway.RouteSegment{
			FromStationID:   fromNode.ID,
			FromStationName: fromNode.Name,
			ToStationID:     toNode.ID,
			ToStationName:   toNode.Name,

			Line:    edge.Line,
			Express: edge.Express,

			Minutes: hop.Minutes,

			Accessible: toNode.Accessible,
			HasOutage:  len(toNode.Outages) > 0,
			Transfer:   edge.Transfer,
		})

		total += hop.Minutes

		if edge.Transfer {
			route.TransferCount++
		}

		if !toNode.Accessible {
			route.FullyAccessible = false
			route.BlockedStations = append(route.BlockedStations, subway.BlockedStation{
				StationID:   toNode.ID,
				StationName: toNode.Name,
				Reason:      blockingReason(toNode),
			})
		}
	}

	route.TotalMinutes = stationgraph.RoundMinutes(total)

	return route
}

func blockingReason(node *stationgraph.Node) string {
	for _, outage := range node.Outages {
		if outage.BlocksAccessibility() {
			return outage.OutageReason
		}
	}

	return ""
}
