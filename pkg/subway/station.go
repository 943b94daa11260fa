package subway

// LineStation is one entry in a line's ordered station sequence.
type LineStation struct {
	ID       string `groups:"basic"`
	Name     string `groups:"basic"`
	Express  bool   `groups:"basic"`
	Terminal bool   `groups:"basic"`

	Latitude  float64 `groups:"basic"`
	Longitude float64 `groups:"basic"`
}

// Line is an ordered run of stations under a single line identifier.
type Line struct {
	ID       string        `groups:"basic"`
	Stations []LineStation `groups:"basic"`
}

// Terminals returns the stations flagged as terminals for this line. The first
// and last stations count as terminals even when the dataset omits the flag.
func (l *Line) Terminals() []LineStation {
	var terminals []LineStation

	for index, station := range l.Stations {
		if station.Terminal || index == 0 || index == len(l.Stations)-1 {
			terminals = append(terminals, station)
		}
	}

	return terminals
}
