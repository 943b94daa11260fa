package traveltime

import (
	"time"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/subway"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// ParseFeed decodes a GTFS-RT protobuf body into arrival samples. Fetching the
// feed is the ingestion collaborator's job; this only converts an already
// retrieved message.
func ParseFeed(body []byte) ([]subway.ArrivalSample, error) {
	feed := gtfs.FeedMessage{}
	if err := proto.Unmarshal(body, &feed); err != nil {
		return nil, err
	}

	return SamplesFromFeed(&feed), nil
}

// SamplesFromFeed extracts one arrival sample per trip update stop time that
// carries an arrival estimate.
func SamplesFromFeed(feed *gtfs.FeedMessage) []subway.ArrivalSample {
	var samples []subway.ArrivalSample

	for _, entity := range feed.Entity {
		tripUpdate := entity.GetTripUpdate()
		if tripUpdate == nil {
			continue
		}

		trip := tripUpdate.GetTrip()

		for _, stopTimeUpdate := range tripUpdate.GetStopTimeUpdate() {
			arrival := stopTimeUpdate.GetArrival()
			if arrival == nil || arrival.GetTime() == 0 {
				continue
			}

			samples = append(samples, subway.ArrivalSample{
				TripID:      trip.GetTripId(),
				StopID:      stopTimeUpdate.GetStopId(),
				RouteID:     trip.GetRouteId(),
				ArrivalTime: time.Unix(arrival.GetTime(), 0),
			})
		}
	}

	return samples
}
