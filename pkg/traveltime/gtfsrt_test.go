package traveltime

import (
	"testing"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func testFeed(base time.Time) *gtfs.FeedMessage {
	return &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
		},
		Entity: []*gtfs.FeedEntity{
			{
				Id: proto.String("1"),
				TripUpdate: &gtfs.TripUpdate{
					Trip: &gtfs.TripDescriptor{
						TripId:  proto.String("trip-1"),
						RouteId: proto.String("X"),
					},
					StopTimeUpdate: []*gtfs.TripUpdate_StopTimeUpdate{
						{
							StopId:  proto.String("P"),
							Arrival: &gtfs.TripUpdate_StopTimeEvent{Time: proto.Int64(base.Unix())},
						},
						{
							StopId:  proto.String("Q"),
							Arrival: &gtfs.TripUpdate_StopTimeEvent{Time: proto.Int64(base.Add(4 * time.Minute).Unix())},
						},
						{
							// No arrival estimate: skipped
							StopId: proto.String("R"),
						},
					},
				},
			},
			{
				// Vehicle position entity carries no arrivals
				Id: proto.String("2"),
				Vehicle: &gtfs.VehiclePosition{
					Trip: &gtfs.TripDescriptor{TripId: proto.String("trip-2")},
				},
			},
		},
	}
}

func TestSamplesFromFeed(t *testing.T) {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	samples := SamplesFromFeed(testFeed(base))
	require.Len(t, samples, 2)

	assert.Equal(t, "trip-1", samples[0].TripID)
	assert.Equal(t, "P", samples[0].StopID)
	assert.Equal(t, "X", samples[0].RouteID)
	assert.Equal(t, base.Unix(), samples[0].ArrivalTime.Unix())

	assert.Equal(t, "Q", samples[1].StopID)
	assert.Equal(t, base.Add(4*time.Minute).Unix(), samples[1].ArrivalTime.Unix())
}

func TestParseFeedRoundTrip(t *testing.T) {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	body, err := proto.Marshal(testFeed(base))
	require.NoError(t, err)

	samples, err := ParseFeed(body)
	require.NoError(t, err)
	assert.Len(t, samples, 2)

	_, err = ParseFeed([]byte("not a protobuf"))
	assert.Error(t, err)
}
