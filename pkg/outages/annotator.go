package outages

import (
	"strings"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/subway"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/util"

	"github.com/rs/zerolog/log"
)

// NormalizeStationName reduces a station name to a comparison key. The outage
// feed and the static topology disagree on punctuation and casing ("Times Sq-42 St"
// vs "Times Square - 42nd St"), so matching happens on a lowercased
// alphanumeric form.
func NormalizeStationName(name string) string {
	var builder strings.Builder

	lastSpace := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			builder.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				builder.WriteRune(' ')
				lastSpace = true
			}
		}
	}

	return strings.TrimSpace(builder.String())
}

// Index holds the active equipment outages keyed by normalized station name.
type Index struct {
	byStation map[string][]subway.EquipmentOutage
}

// BuildIndex filters an outage feed snapshot down to active records and groups
// them by station.
func BuildIndex(records []subway.EquipmentOutage) *Index {
	active := make([]subway.EquipmentOutage, len(records))
	copy(active, records)

	util.InPlaceFilter(&active, func(outage subway.EquipmentOutage) bool {
		return outage.IsActive
	})

	index := &Index{
		byStation: map[string][]subway.EquipmentOutage{},
	}

	for _, outage := range active {
		key := NormalizeStationName(outage.StationName)
		if key == "" {
			log.Debug().Str("equipment", outage.EquipmentID).Msg("Outage record has no usable station name")
			continue
		}

		index.byStation[key] = append(index.byStation[key], outage)
	}

	return index
}

// For returns every active outage mapped to the given station name.
func (i *Index) For(stationName string) []subway.EquipmentOutage {
	return i.byStation[NormalizeStationName(stationName)]
}

// AccessibilityBlockers returns the active ADA relevant elevator outages for a
// station. An empty result means the station is accessible.
func (i *Index) AccessibilityBlockers(stationName string) []subway.EquipmentOutage {
	var blockers []subway.EquipmentOutage

	for _, outage := range i.For(stationName) {
		if outage.BlocksAccessibility() {
			blockers = append(blockers, outage)
		}
	}

	return blockers
}

// BlocksStation reports whether any active ADA relevant elevator outage maps
// to the station.
func (i *Index) BlocksStation(stationName string) bool {
	return len(i.AccessibilityBlockers(stationName)) > 0
}
