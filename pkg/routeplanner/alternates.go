package routeplanner

import (
	"fmt"
	"sort"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/stationgraph"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/subway"

	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/slices"
)

type candidateKind int

const (
	candidateAccessible candidateKind = iota
	candidateDetour
)

type candidate struct {
	kind  candidateKind
	route *subway.AccessibleRoute
}

// generateAlternatives produces up to maxAlternatives alternate routes:
// an accessible re-solve when the primary is not fully accessible, and a
// structural detour that avoids the primary's intermediate stations. The two
// solver runs are independent and execute concurrently.
func (p *Planner) generateAlternatives(
	graph *stationgraph.Graph,
	primaryPath *Path,
	primary *subway.AccessibleRoute,
	fromID string,
	toID string,
	liveMinutes map[stationgraph.EdgeKey]float64,
	maxAlternatives int,
) ([]*subway.AccessibleRoute, []string) {
	var warnings []string

	runs := pool.NewWithResults[candidate]()

	wantAccessible := !primary.FullyAccessible
	if wantAccessible {
		runs.Go(func() candidate {
			path := Solve(graph, fromID, toID, SolveOptions{
				RequireAccessible: true,
				LiveMinutes:       liveMinutes,
			})
			if path == nil {
				return candidate{kind: candidateAccessible}
			}

			return candidate{kind: candidateAccessible, route: AssembleRoute(graph, path)}
		})
	}

	runs.Go(func() candidate {
		path := Solve(graph, fromID, toID, SolveOptions{
			Avoid:       primaryPath.IntermediateStations(),
			LiveMinutes: liveMinutes,
		})
		if path == nil {
			return candidate{kind: candidateDetour}
		}

		return candidate{kind: candidateDetour, route: AssembleRoute(graph, path)}
	})

	candidates := runs.Wait()

	// Accessible candidate first so detours deduplicate against it
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].kind < candidates[b].kind
	})

	alternatives := []*subway.AccessibleRoute{}

	for _, c := range candidates {
		switch c.kind {
		case candidateAccessible:
			if c.route == nil {
				warnings = append(warnings, fmt.Sprintf("No fully accessible route available between %s and %s", fromID, toID))
				continue
			}
			if duplicatesPrimary(c.route, primary) || duplicatesCollected(c.route, alternatives) {
				continue
			}

			alternatives = append(alternatives, c.route)

		case candidateDetour:
			if c.route == nil {
				continue
			}
			if c.route.TotalMinutes > primary.TotalMinutes*p.config.AlternateTimeFactor {
				continue
			}
			if duplicatesPrimary(c.route, primary) || duplicatesCollected(c.route, alternatives) {
				continue
			}

			alternatives = append(alternatives, c.route)
		}
	}

	// Accessible routes first, then ascending by time
	sort.SliceStable(alternatives, func(a, b int) bool {
		if alternatives[a].FullyAccessible != alternatives[b].FullyAccessible {
			return alternatives[a].FullyAccessible
		}
		return alternatives[a].TotalMinutes < alternatives[b].TotalMinutes
	})

	if len(alternatives) > maxAlternatives {
		alternatives = alternatives[:maxAlternatives]
	}

	return alternatives, warnings
}

// duplicatesPrimary compares full segment signatures: an alternate may share
// the primary's line sequence, but never its exact hop sequence.
func duplicatesPrimary(route *subway.AccessibleRoute, primary *subway.AccessibleRoute) bool {
	return slices.Equal(segmentSignature(route), segmentSignature(primary))
}

// duplicatesCollected compares ordered line sequences between alternates.
func duplicatesCollected(route *subway.AccessibleRoute, collected []*subway.AccessibleRoute) bool {
	for _, existing := range collected {
		if slices.Equal(route.LineSignature(), existing.LineSignature()) {
			return true
		}
	}

	return false
}

func segmentSignature(route *subway.AccessibleRoute) []string {
	var signature []string

	for _, segment := range route.Segments {
		signature = append(signature, fmt.Sprintf("%s>%s@%s", segment.FromStationID, segment.ToStationID, segment.Line))
	}

	return signature
}
