package subway

// RouteSegment is one line-continuous or transfer hop of a planned route.
type RouteSegment struct {
	FromStationID   string `groups:"basic"`
	FromStationName string `groups:"basic"`
	ToStationID     string `groups:"basic"`
	ToStationName   string `groups:"basic"`

	Line    string `groups:"basic"`
	Express bool   `groups:"basic"`

	Minutes float64 `groups:"basic"`

	Accessible bool `groups:"basic"`
	HasOutage  bool `groups:"basic"`
	Transfer   bool `groups:"basic"`
}

// BlockedStation identifies a station on a route whose accessibility is taken
// out by an active outage.
type BlockedStation struct {
	StationID   string `groups:"basic"`
	StationName string `groups:"basic"`
	Reason      string `groups:"basic"`
}

// AccessibleRoute is a planned route annotated with accessibility information.
// Produced fresh per query and never persisted.
type AccessibleRoute struct {
	Segments []RouteSegment `groups:"basic"`

	TotalMinutes    float64 `groups:"basic"`
	TransferCount   int     `groups:"basic"`
	FullyAccessible bool    `groups:"basic"`

	BlockedStations []BlockedStation `groups:"basic"`
}

// LineSignature is the ordered sequence of line identifiers a route traverses,
// used to deduplicate alternates against each other and the primary.
func (r *AccessibleRoute) LineSignature() []string {
	var signature []string

	for _, segment := range r.Segments {
		if len(signature) == 0 || signature[len(signature)-1] != segment.Line {
			signature = append(signature, segment.Line)
		}
	}

	return signature
}

// RouteResults is the full answer to a route query.
type RouteResults struct {
	Primary      *AccessibleRoute   `groups:"basic"`
	Alternatives []*AccessibleRoute `groups:"basic"`
	Warnings     []string           `groups:"basic"`
}
