package stationgraph

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/config"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/outages"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/subway"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/topology"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Builder constructs station graphs from the static topology and an outage
// snapshot. One fully built graph instance is cached and served to every
// query until the outage snapshot changes structurally; a rebuild swaps the
// cached pointer atomically, so readers never observe a half built graph.
type Builder struct {
	topology  *topology.Topology
	estimator *Estimator

	transferPenaltyMinutes float64

	mutex         sync.Mutex
	cached        atomic.Pointer[Graph]
	cachedOutages []subway.EquipmentOutage
}

func NewBuilder(topo *topology.Topology, cfg config.Planner) *Builder {
	return &Builder{
		topology:  topo,
		estimator: NewEstimator(cfg.Estimator),

		transferPenaltyMinutes: cfg.TransferPenaltyMinutes,
	}
}

// Graph returns the cached graph when the outage snapshot is structurally
// unchanged, otherwise rebuilds.
func (b *Builder) Graph(outageRecords []subway.EquipmentOutage) *Graph {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if cached := b.cached.Load(); cached != nil && outageSnapshotsEqual(b.cachedOutages, outageRecords) {
		return cached
	}

	graph := b.build(outageRecords)

	// Deep copy the snapshot so later caller side mutation of the records
	// cannot poison the equality check
	var snapshot []subway.EquipmentOutage
	if err := copier.CopyWithOption(&snapshot, &outageRecords, copier.Option{DeepCopy: true}); err != nil {
		log.Error().Err(err).Msg("Failed to copy outage snapshot")
		snapshot = nil
	}

	b.cachedOutages = snapshot
	b.cached.Store(graph)

	log.Info().
		Int("nodes", len(graph.Nodes)).
		Int("outages", len(outageRecords)).
		Msg("Built station graph")

	return graph
}

func outageSnapshotsEqual(a []subway.EquipmentOutage, b []subway.EquipmentOutage) bool {
	if len(a) != len(b) {
		return false
	}

	sortedA := make([]subway.EquipmentOutage, len(a))
	sortedB := make([]subway.EquipmentOutage, len(b))
	copy(sortedA, a)
	copy(sortedB, b)

	// Total order over the full record, so duplicated equipment ids cannot
	// leave structurally equal snapshots in different sort orders
	slices.SortFunc(sortedA, compareOutageRecords)
	slices.SortFunc(sortedB, compareOutageRecords)

	return slices.Equal(sortedA, sortedB)
}

func compareOutageRecords(x subway.EquipmentOutage, y subway.EquipmentOutage) int {
	if c := strings.Compare(x.EquipmentID, y.EquipmentID); c != 0 {
		return c
	}
	if c := strings.Compare(x.StationName, y.StationName); c != 0 {
		return c
	}
	if c := strings.Compare(string(x.EquipmentType), string(y.EquipmentType)); c != 0 {
		return c
	}
	if c := strings.Compare(x.OutageReason, y.OutageReason); c != 0 {
		return c
	}
	if x.ADACompliant != y.ADACompliant {
		if x.ADACompliant {
			return 1
		}
		return -1
	}
	if x.IsActive != y.IsActive {
		if x.IsActive {
			return 1
		}
		return -1
	}

	return 0
}

func (b *Builder) build(outageRecords []subway.EquipmentOutage) *Graph {
	index := outages.BuildIndex(outageRecords)

	graph := &Graph{
		Nodes:     map[string]*Node{},
		Adjacency: map[string][]*Edge{},
	}

	for _, line := range b.topology.Lines {
		for position, station := range line.Stations {
			b.ensureNode(graph, station, line.ID, index)

			if position == 0 {
				continue
			}

			previous := line.Stations[position-1]

			// A hop runs express only when both ends are express stops
			express := previous.Express && station.Express
			minutes := b.estimator.Minutes(previous, station, express)

			graph.addEdge(&Edge{
				From:             previous.ID,
				To:               station.ID,
				Line:             line.ID,
				Express:          express,
				EstimatedMinutes: minutes,
			})
			graph.addEdge(&Edge{
				From:             station.ID,
				To:               previous.ID,
				Line:             line.ID,
				Express:          express,
				EstimatedMinutes: minutes,
			})
		}
	}

	b.addTransferEdges(graph)

	return graph
}

func (b *Builder) ensureNode(graph *Graph, station subway.LineStation, lineID string, index *outages.Index) {
	node := graph.Nodes[station.ID]

	if node == nil {
		node = &Node{
			ID:          station.ID,
			Name:        station.Name,
			ExpressStop: map[string]bool{},
			Latitude:    station.Latitude,
			Longitude:   station.Longitude,

			HasElevator: true,

			Accessible: !index.BlocksStation(station.Name),
			Outages:    index.For(station.Name),
		}
		graph.Nodes[station.ID] = node
	}

	if !slices.Contains(node.Lines, lineID) {
		node.Lines = append(node.Lines, lineID)
	}
	node.ExpressStop[lineID] = station.Express
}

// addTransferEdges links every pair of distinct station ids sharing a
// normalized name (multi complex stations like Times Sq) with a fixed penalty
// in both directions.
func (b *Builder) addTransferEdges(graph *Graph) {
	byName := map[string][]string{}
	for id, node := range graph.Nodes {
		key := outages.NormalizeStationName(node.Name)
		byName[key] = append(byName[key], id)
	}

	var names []string
	for name, ids := range byName {
		if len(ids) < 2 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ids := byName[name]
		sort.Strings(ids)

		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				graph.addEdge(&Edge{
					From:             ids[i],
					To:               ids[j],
					Line:             TransferLine,
					Transfer:         true,
					EstimatedMinutes: b.transferPenaltyMinutes,
				})
				graph.addEdge(&Edge{
					From:             ids[j],
					To:               ids[i],
					Line:             TransferLine,
					Transfer:         true,
					EstimatedMinutes: b.transferPenaltyMinutes,
				})
			}
		}
	}
}
