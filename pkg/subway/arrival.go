package subway

import "time"

// ArrivalSample is a single observed stop arrival for a trip, produced by an
// external feed decoding collaborator (or the bundled GTFS-RT adapter).
type ArrivalSample struct {
	TripID      string
	StopID      string
	RouteID     string
	ArrivalTime time.Time
}
