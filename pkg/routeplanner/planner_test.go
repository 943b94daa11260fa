package routeplanner

import (
	"testing"
	"time"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/config"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/subway"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/topology"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/traveltime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var queensboroOutage = subway.EquipmentOutage{
	EquipmentID:   "EL402",
	StationName:   "Queensboro",
	EquipmentType: subway.EquipmentTypeElevator,
	ADACompliant:  true,
	OutageReason:  "Capital Replacement",
	IsActive:      true,
}

func testPlanner(t *testing.T) *Planner {
	t.Helper()

	return NewPlanner(plannerTopology(t), config.Defaults())
}

func TestFindRoutesSingleLine(t *testing.T) {
	planner := testPlanner(t)

	results := planner.FindRoutes("P", "R", nil, Options{})

	require.NotNil(t, results.Primary)
	assert.Empty(t, results.Warnings)

	// The line Y detour costs more than 1.5x the primary, so no alternates
	assert.Empty(t, results.Alternatives)

	primary := results.Primary
	require.Len(t, primary.Segments, 2)
	assert.Equal(t, 0, primary.TransferCount)
	assert.True(t, primary.FullyAccessible)
	assert.Empty(t, primary.BlockedStations)

	for _, segment := range primary.Segments {
		assert.Equal(t, "X", segment.Line)
		assert.True(t, segment.Accessible)
	}

	sum := 0.0
	for _, segment := range primary.Segments {
		sum += segment.Minutes
	}
	assert.InDelta(t, sum, primary.TotalMinutes, 0.05)
}

func TestFindRoutesZeroCoordinateStations(t *testing.T) {
	// Stations on the equator and prime meridian carry legitimate zero
	// coordinate values
	topo, err := topology.FromLines([]subway.Line{
		{
			ID: "X",
			Stations: []subway.LineStation{
				{ID: "P", Name: "Park Pl", Latitude: 0, Longitude: 0, Terminal: true},
				{ID: "Q", Name: "Queensboro", Latitude: 0, Longitude: 0.01},
				{ID: "R", Name: "Rector St", Latitude: 0, Longitude: 0.02, Terminal: true},
			},
		},
	})
	require.NoError(t, err)

	planner := NewPlanner(topo, config.Defaults())

	results := planner.FindRoutes("P", "R", nil, Options{})

	primary := results.Primary
	require.NotNil(t, primary)
	require.Len(t, primary.Segments, 2)
	assert.Equal(t, 0, primary.TransferCount)
	assert.Equal(t, []string{"X"}, primary.LineSignature())
	assert.Greater(t, primary.TotalMinutes, 0.0)
	assert.Empty(t, results.Warnings)
}

func TestFindRoutesIsIdempotent(t *testing.T) {
	planner := testPlanner(t)

	first := planner.FindRoutes("P", "R", []subway.EquipmentOutage{queensboroOutage}, Options{})
	second := planner.FindRoutes("P", "R", []subway.EquipmentOutage{queensboroOutage}, Options{})

	assert.Equal(t, first, second)
}

func TestFindRoutesBlockedStationWithDetour(t *testing.T) {
	planner := testPlanner(t)

	results := planner.FindRoutes("P", "R", []subway.EquipmentOutage{queensboroOutage}, Options{})

	primary := results.Primary
	require.NotNil(t, primary)
	assert.False(t, primary.FullyAccessible)
	require.Len(t, primary.BlockedStations, 1)
	assert.Equal(t, "Q", primary.BlockedStations[0].StationID)
	assert.Equal(t, "Capital Replacement", primary.BlockedStations[0].Reason)

	// The line Y detour shows up as an accessible candidate
	require.NotEmpty(t, results.Alternatives)
	accessible := results.Alternatives[0]
	assert.True(t, accessible.FullyAccessible)
	assert.Equal(t, []string{"Y"}, accessible.LineSignature())

	for _, alternative := range results.Alternatives {
		assert.NotEqual(t, segmentSignature(primary), segmentSignature(alternative))
	}
}

func TestFindRoutesBlockedStationWithoutDetour(t *testing.T) {
	topo, err := topology.FromLines([]subway.Line{
		{
			ID: "X",
			Stations: []subway.LineStation{
				{ID: "P", Name: "Park Pl", Latitude: 40.700, Longitude: -74.00, Terminal: true},
				{ID: "Q", Name: "Queensboro", Latitude: 40.710, Longitude: -74.00},
				{ID: "R", Name: "Rector St", Latitude: 40.720, Longitude: -74.00, Terminal: true},
			},
		},
	})
	require.NoError(t, err)

	planner := NewPlanner(topo, config.Defaults())

	results := planner.FindRoutes("P", "R", []subway.EquipmentOutage{queensboroOutage}, Options{})

	require.NotNil(t, results.Primary)
	assert.False(t, results.Primary.FullyAccessible)
	assert.Empty(t, results.Alternatives)

	require.NotEmpty(t, results.Warnings)
	assert.Contains(t, results.Warnings[0], "No fully accessible route")
}

func TestFindRoutesAcrossTransfer(t *testing.T) {
	topo, err := topology.FromLines([]subway.Line{
		{
			ID: "J",
			Stations: []subway.LineStation{
				{ID: "A", Name: "Astor Pl", Latitude: 40.730, Longitude: -73.991, Terminal: true},
				{ID: "S1", Name: "Union Sq", Latitude: 40.735, Longitude: -73.990, Terminal: true},
			},
		},
		{
			ID: "K",
			Stations: []subway.LineStation{
				{ID: "S2", Name: "Union Sq", Latitude: 40.7352, Longitude: -73.9901, Terminal: true},
				{ID: "B", Name: "Bleecker St", Latitude: 40.740, Longitude: -73.990, Terminal: true},
			},
		},
	})
	require.NoError(t, err)

	cfg := config.Defaults()
	planner := NewPlanner(topo, cfg)

	results := planner.FindRoutes("A", "B", nil, Options{})

	primary := results.Primary
	require.NotNil(t, primary)
	require.Len(t, primary.Segments, 3)
	assert.Equal(t, 1, primary.TransferCount)

	transfer := primary.Segments[1]
	assert.True(t, transfer.Transfer)
	assert.Equal(t, "TRANSFER", transfer.Line)
	assert.Equal(t, cfg.TransferPenaltyMinutes, transfer.Minutes)
	assert.Equal(t, "S1", transfer.FromStationID)
	assert.Equal(t, "S2", transfer.ToStationID)
}

func TestFindRoutesDegenerateQuery(t *testing.T) {
	planner := testPlanner(t)

	results := planner.FindRoutes("P", "P", nil, Options{})

	require.NotNil(t, results.Primary)
	assert.Empty(t, results.Primary.Segments)
	assert.Equal(t, 0.0, results.Primary.TotalMinutes)
	assert.True(t, results.Primary.FullyAccessible)
	assert.Empty(t, results.Warnings)
}

func TestFindRoutesUnknownStation(t *testing.T) {
	planner := testPlanner(t)

	results := planner.FindRoutes("P", "ZZ", nil, Options{})

	assert.Nil(t, results.Primary)
	assert.Empty(t, results.Alternatives)
	require.NotEmpty(t, results.Warnings)
	assert.Contains(t, results.Warnings[0], "ZZ")
}

func TestFindRoutesUsesLiveTimesWhenFresh(t *testing.T) {
	planner := testPlanner(t)

	now := time.Now()
	cache := traveltime.NewCache(config.Defaults().Realtime)
	planner.AttachTravelTimes(cache)

	// Two trips crawling from Park Pl to Queensboro push the live estimate
	// well past the static one
	for _, tripID := range []string{"trip-1", "trip-2"} {
		cache.RecordArrivals([]subway.ArrivalSample{
			{TripID: tripID, StopID: "P", RouteID: "X", ArrivalTime: now},
			{TripID: tripID, StopID: "Q", RouteID: "X", ArrivalTime: now.Add(25 * time.Minute)},
		})
	}

	live := planner.FindRoutes("P", "R", nil, Options{UseLiveTimes: true})
	require.NotNil(t, live.Primary)
	assert.Equal(t, []string{"Y"}, live.Primary.LineSignature())

	static := planner.FindRoutes("P", "R", nil, Options{})
	require.NotNil(t, static.Primary)
	assert.Equal(t, []string{"X"}, static.Primary.LineSignature())
}

func TestFindRoutesIgnoresThinLiveData(t *testing.T) {
	planner := testPlanner(t)

	cache := traveltime.NewCache(config.Defaults().Realtime)
	planner.AttachTravelTimes(cache)

	// A single sample stays below the minimum and must not influence routing
	now := time.Now()
	cache.RecordArrivals([]subway.ArrivalSample{
		{TripID: "trip-1", StopID: "P", RouteID: "X", ArrivalTime: now},
		{TripID: "trip-1", StopID: "Q", RouteID: "X", ArrivalTime: now.Add(25 * time.Minute)},
	})

	withCache := planner.FindRoutes("P", "R", nil, Options{UseLiveTimes: true})
	withoutCache := planner.FindRoutes("P", "R", nil, Options{})

	assert.Equal(t, withoutCache, withCache)
}

func TestFindRoutesCapsAlternatives(t *testing.T) {
	planner := testPlanner(t)

	results := planner.FindRoutes("P", "R", []subway.EquipmentOutage{queensboroOutage}, Options{MaxAlternatives: 1})

	assert.LessOrEqual(t, len(results.Alternatives), 1)
}
