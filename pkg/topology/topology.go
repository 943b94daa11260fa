package topology

import (
	"errors"
	"fmt"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/subway"
)

var (
	ErrMissingLineID      = errors.New("topology record has no line id")
	ErrMissingStationID   = errors.New("topology record has no station id")
	ErrMissingStationName = errors.New("topology record has no station name")
	ErrMissingCoordinates = errors.New("topology record has no coordinates")
)

// Topology is the static line layout of the network, loaded once at process
// start and read-only afterwards.
type Topology struct {
	Lines []subway.Line

	lineIndex map[string]int
}

// FromLines builds a Topology from already-typed line sequences, validating
// every station record. Corrupted topology is a hard failure, never something
// to propagate into graph construction. Any concrete coordinate pair is
// accepted, zero values included; absence is only detectable at load time.
func FromLines(lines []subway.Line) (*Topology, error) {
	topology := &Topology{
		lineIndex: map[string]int{},
	}

	for _, line := range lines {
		if line.ID == "" {
			return nil, ErrMissingLineID
		}
		if _, exists := topology.lineIndex[line.ID]; exists {
			return nil, fmt.Errorf("duplicate line %s", line.ID)
		}

		for _, station := range line.Stations {
			if err := validateStation(line.ID, station); err != nil {
				return nil, err
			}
		}

		topology.lineIndex[line.ID] = len(topology.Lines)
		topology.Lines = append(topology.Lines, line)
	}

	return topology, nil
}

func validateStation(lineID string, station subway.LineStation) error {
	if station.ID == "" {
		return fmt.Errorf("%w: line %s", ErrMissingStationID, lineID)
	}
	if station.Name == "" {
		return fmt.Errorf("%w: line %s station %s", ErrMissingStationName, lineID, station.ID)
	}

	return nil
}

// Line returns the line with the given id, or nil when unknown.
func (t *Topology) Line(id string) *subway.Line {
	index, exists := t.lineIndex[id]
	if !exists {
		return nil
	}

	return &t.Lines[index]
}

// StationsOnLine returns the ordered station sequence of a line.
func (t *Topology) StationsOnLine(id string) []subway.LineStation {
	line := t.Line(id)
	if line == nil {
		return nil
	}

	return line.Stations
}

// Terminals returns the terminal stations of a line.
func (t *Topology) Terminals(id string) []subway.LineStation {
	line := t.Line(id)
	if line == nil {
		return nil
	}

	return line.Terminals()
}

func (t *Topology) LineIDs() []string {
	var ids []string

	for _, line := range t.Lines {
		ids = append(ids, line.ID)
	}

	return ids
}
