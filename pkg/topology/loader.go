package topology

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/subway"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// stationRecord is one row of the topology csv. Rows are grouped by line and
// ordered by position along it. Coordinates are pointers so a blank cell is
// distinguishable from a station sitting at zero.
type stationRecord struct {
	Line string `csv:"line"`

	ID       string `csv:"id"`
	Name     string `csv:"name"`
	Express  bool   `csv:"express"`
	Terminal bool   `csv:"terminal"`

	Latitude  *float64 `csv:"lat,omitempty"`
	Longitude *float64 `csv:"lon,omitempty"`
}

// Load reads a topology csv, grouping rows into ordered per-line station
// sequences. Line order follows first appearance in the file.
func Load(reader io.Reader) (*Topology, error) {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})

	var records []stationRecord
	if err := gocsv.Unmarshal(reader, &records); err != nil {
		return nil, err
	}

	var lines []subway.Line
	lineIndex := map[string]int{}

	for _, record := range records {
		if record.Line == "" {
			return nil, ErrMissingLineID
		}
		if record.Latitude == nil || record.Longitude == nil {
			return nil, fmt.Errorf("%w: line %s station %s", ErrMissingCoordinates, record.Line, record.ID)
		}

		index, exists := lineIndex[record.Line]
		if !exists {
			index = len(lines)
			lineIndex[record.Line] = index
			lines = append(lines, subway.Line{ID: record.Line})
		}

		lines[index].Stations = append(lines[index].Stations, subway.LineStation{
			ID:       record.ID,
			Name:     record.Name,
			Express:  record.Express,
			Terminal: record.Terminal,

			Latitude:  *record.Latitude,
			Longitude: *record.Longitude,
		})
	}

	return FromLines(lines)
}

func LoadFile(path string) (*Topology, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	topology, err := Load(file)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("file", path).
		Int("lines", len(topology.Lines)).
		Msg("Loaded static topology")

	return topology, nil
}
