package routeplanner

import (
	"fmt"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/config"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/stationgraph"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/subway"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/topology"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/traveltime"

	"github.com/rs/zerolog/log"
)

// Planner is the route query entry point. It owns the memoized graph builder
// and optionally reads the live travel time cache; path queries themselves are
// pure and safe to run concurrently against one cached graph.
type Planner struct {
	builder     *stationgraph.Builder
	travelTimes *traveltime.Cache

	config config.Planner
}

// Options adjust a single route query.
type Options struct {
	// MaxAlternatives caps the alternatives list; 0 means the configured
	// default.
	MaxAlternatives int

	// UseLiveTimes resolves edge weights from the live cache snapshot where
	// fresh entries exist.
	UseLiveTimes bool
}

func NewPlanner(topo *topology.Topology, cfg config.Planner) *Planner {
	return &Planner{
		builder: stationgraph.NewBuilder(topo, cfg),
		config:  cfg,
	}
}

// AttachTravelTimes wires in the live travel time cache. Without one, every
// query runs on static estimates.
func (p *Planner) AttachTravelTimes(cache *traveltime.Cache) {
	p.travelTimes = cache
}

// FindRoutes plans the fastest route between two stations under the given
// outage snapshot, with accessibility annotation and alternates. Expected
// failures (unknown station, no path, no accessible alternative) surface as a
// nil primary and/or warnings, never as an error.
func (p *Planner) FindRoutes(fromID string, toID string, outageRecords []subway.EquipmentOutage, options Options) subway.RouteResults {
	results := subway.RouteResults{
		Alternatives: []*subway.AccessibleRoute{},
	}

	graph := p.builder.Graph(outageRecords)

	if graph.Node(fromID) == nil || graph.Node(toID) == nil {
		results.Warnings = append(results.Warnings, fmt.Sprintf("Unknown station %s", firstUnknown(graph, fromID, toID)))
		return results
	}

	if fromID == toID {
		results.Primary = &subway.AccessibleRoute{
			Segments:        []subway.RouteSegment{},
			FullyAccessible: true,
		}
		return results
	}

	var liveMinutes map[stationgraph.EdgeKey]float64
	if options.UseLiveTimes && p.travelTimes != nil {
		liveMinutes = p.travelTimes.Snapshot()
	}

	primaryPath := Solve(graph, fromID, toID, SolveOptions{LiveMinutes: liveMinutes})
	if primaryPath == nil {
		results.Warnings = append(results.Warnings, fmt.Sprintf("No route found between %s and %s", fromID, toID))
		return results
	}

	results.Primary = AssembleRoute(graph, primaryPath)

	maxAlternatives := options.MaxAlternatives
	if maxAlternatives <= 0 {
		maxAlternatives = p.config.MaxAlternatives
	}

	alternatives, warnings := p.generateAlternatives(graph, primaryPath, results.Primary, fromID, toID, liveMinutes, maxAlternatives)
	results.Alternatives = alternatives
	results.Warnings = append(results.Warnings, warnings...)

	log.Debug().
		Str("from", fromID).
		Str("to", toID).
		Float64("minutes", results.Primary.TotalMinutes).
		Int("alternatives", len(results.Alternatives)).
		Bool("accessible", results.Primary.FullyAccessible).
		Msg("Planned route")

	return results
}

func firstUnknown(graph *stationgraph.Graph, ids ...string) string {
	for _, id := range ids {
		if graph.Node(id) == nil {
			return id
		}
	}

	return ""
}
