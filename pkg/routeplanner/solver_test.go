package routeplanner

import (
	"testing"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/config"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/stationgraph"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/subway"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/topology"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two ways from Park Pl to Rector St: direct on line X through Queensboro, or
// the longer line Y detour through Spring St.
func plannerTopology(t *testing.T) *topology.Topology {
	t.Helper()

	topo, err := topology.FromLines([]subway.Line{
		{
			ID: "X",
			Stations: []subway.LineStation{
				{ID: "P", Name: "Park Pl", Latitude: 40.700, Longitude: -74.00, Terminal: true},
				{ID: "Q", Name: "Queensboro", Latitude: 40.710, Longitude: -74.00},
				{ID: "R", Name: "Rector St", Latitude: 40.720, Longitude: -74.00, Terminal: true},
			},
		},
		{
			ID: "Y",
			Stations: []subway.LineStation{
				{ID: "P", Name: "Park Pl", Latitude: 40.700, Longitude: -74.00, Terminal: true},
				{ID: "S", Name: "Spring St", Latitude: 40.712, Longitude: -74.02},
				{ID: "R", Name: "Rector St", Latitude: 40.720, Longitude: -74.00, Terminal: true},
			},
		},
	})
	require.NoError(t, err)

	return topo
}

func plannerGraph(t *testing.T, outageRecords []subway.EquipmentOutage) *stationgraph.Graph {
	t.Helper()

	return stationgraph.NewBuilder(plannerTopology(t), config.Defaults()).Graph(outageRecords)
}

func pathStations(path *Path) []string {
	stations := []string{path.Origin}
	for _, hop := range path.Hops {
		stations = append(stations, hop.Edge.To)
	}

	return stations
}

func TestSolveFindsShortestPath(t *testing.T) {
	graph := plannerGraph(t, nil)

	path := Solve(graph, "P", "R", SolveOptions{})
	require.NotNil(t, path)

	assert.Equal(t, []string{"P", "Q", "R"}, pathStations(path))

	// Optimality: no enumerable alternative is cheaper
	detourCost := 0.0
	for _, pair := range [][2]string{{"P", "S"}, {"S", "R"}} {
		for _, edge := range graph.EdgesFrom(pair[0]) {
			if edge.To == pair[1] {
				detourCost += edge.EstimatedMinutes
			}
		}
	}
	assert.LessOrEqual(t, path.TotalMinutes, detourCost)

	// Total equals the sum of traversed edge weights
	sum := 0.0
	for _, hop := range path.Hops {
		sum += hop.Minutes
	}
	assert.Equal(t, stationgraph.RoundMinutes(sum), path.TotalMinutes)
}

func TestSolveHonoursAvoidSet(t *testing.T) {
	graph := plannerGraph(t, nil)

	path := Solve(graph, "P", "R", SolveOptions{Avoid: map[string]bool{"Q": true}})
	require.NotNil(t, path)

	assert.Equal(t, []string{"P", "S", "R"}, pathStations(path))
}

func TestSolveHonoursAccessibilityFilter(t *testing.T) {
	graph := plannerGraph(t, []subway.EquipmentOutage{
		{EquipmentID: "EL1", StationName: "Queensboro", EquipmentType: subway.EquipmentTypeElevator, ADACompliant: true, OutageReason: "Repair", IsActive: true},
	})

	unconstrained := Solve(graph, "P", "R", SolveOptions{})
	require.NotNil(t, unconstrained)
	assert.Equal(t, []string{"P", "Q", "R"}, pathStations(unconstrained))

	accessible := Solve(graph, "P", "R", SolveOptions{RequireAccessible: true})
	require.NotNil(t, accessible)
	assert.Equal(t, []string{"P", "S", "R"}, pathStations(accessible))

	for _, hop := range accessible.Hops {
		assert.True(t, graph.Node(hop.Edge.To).Accessible)
	}
}

func TestSolvePrefersLiveWeights(t *testing.T) {
	graph := plannerGraph(t, nil)

	// A crawling hop through Queensboro makes the detour cheaper
	live := map[stationgraph.EdgeKey]float64{
		{From: "P", To: "Q", Line: "X"}: 30,
	}

	path := Solve(graph, "P", "R", SolveOptions{LiveMinutes: live})
	require.NotNil(t, path)
	assert.Equal(t, []string{"P", "S", "R"}, pathStations(path))

	// Without live data the static estimate wins again
	static := Solve(graph, "P", "R", SolveOptions{})
	assert.Equal(t, []string{"P", "Q", "R"}, pathStations(static))
}

func TestSolveUnknownEndpoints(t *testing.T) {
	graph := plannerGraph(t, nil)

	assert.Nil(t, Solve(graph, "P", "ZZ", SolveOptions{}))
	assert.Nil(t, Solve(graph, "ZZ", "P", SolveOptions{}))
}

func TestSolveNoPathUnderConstraints(t *testing.T) {
	graph := plannerGraph(t, nil)

	// Cutting both intermediate stations disconnects the endpoints
	path := Solve(graph, "P", "R", SolveOptions{Avoid: map[string]bool{"Q": true, "S": true}})
	assert.Nil(t, path)
}

func TestSolveDegenerateOriginDestination(t *testing.T) {
	graph := plannerGraph(t, nil)

	path := Solve(graph, "P", "P", SolveOptions{})
	require.NotNil(t, path)
	assert.Empty(t, path.Hops)
	assert.Equal(t, 0.0, path.TotalMinutes)
}
