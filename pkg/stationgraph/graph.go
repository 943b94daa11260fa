package stationgraph

import "github.com/abirh2/NYC-Transit-Hub-sub001/pkg/subway"

// TransferLine is the sentinel line id carried by transfer edges.
const TransferLine = "TRANSFER"

// EdgeKey identifies a directed edge by its endpoints and line. Live travel
// times are keyed by it.
type EdgeKey struct {
	From string
	To   string
	Line string
}

// Node is one station of the built graph. Immutable for the lifetime of a
// cached graph instance.
type Node struct {
	ID   string
	Name string

	Lines       []string
	ExpressStop map[string]bool

	Latitude  float64
	Longitude float64

	// HasElevator is a heuristic: assumed true unless proven otherwise, since
	// the static dataset carries no equipment inventory. An outage referencing
	// the station merely confirms one exists.
	HasElevator bool

	// Accessible is false iff at least one active ADA relevant elevator outage
	// maps to this station.
	Accessible bool
	Outages    []subway.EquipmentOutage
}

// Edge is a directed hop. Every line hop has a mirrored reverse edge with an
// identical weight; transfer edges connect same-named stations across ids.
type Edge struct {
	From string
	To   string
	Line string

	Express  bool
	Transfer bool

	EstimatedMinutes float64
}

func (e *Edge) Key() EdgeKey {
	return EdgeKey{From: e.From, To: e.To, Line: e.Line}
}

// Graph is the directed weighted multigraph over the whole network. Built by
// a Builder, shared read-only across concurrent solver runs.
type Graph struct {
	Nodes     map[string]*Node
	Adjacency map[string][]*Edge
}

func (g *Graph) Node(id string) *Node {
	return g.Nodes[id]
}

// EdgesFrom returns the outgoing edges of a station.
func (g *Graph) EdgesFrom(id string) []*Edge {
	return g.Adjacency[id]
}

func (g *Graph) addEdge(edge *Edge) {
	g.Adjacency[edge.From] = append(g.Adjacency[edge.From], edge)
}
