package stationgraph

import (
	"math"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/config"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/subway"
)

const earthRadiusMiles = 3958.8

// Estimator derives a static travel time for a station pair from great circle
// distance and service type. Estimates are never zero or negative, even for
// co-located stations or gaps in the express flags.
type Estimator struct {
	config config.Estimator
}

func NewEstimator(cfg config.Estimator) *Estimator {
	return &Estimator{config: cfg}
}

// Minutes estimates the travel time of a single hop.
func (e *Estimator) Minutes(from subway.LineStation, to subway.LineStation, express bool) float64 {
	distance := HaversineMiles(from.Latitude, from.Longitude, to.Latitude, to.Longitude)

	base := e.config.LocalBaseMinutes
	speed := e.config.LocalSpeedMPH
	if express {
		base = e.config.ExpressBaseMinutes
		speed = e.config.ExpressSpeedMPH
	}

	minutes := math.Max(base, distance/speed*60)

	// Long hops pick up signalling and curve overhead beyond the pure
	// distance-over-speed estimate
	if distance > e.config.LongHopThresholdMiles {
		minutes += (distance - e.config.LongHopThresholdMiles) * e.config.LongHopMinutesPerMile
	}

	if minutes < e.config.MinimumHopMinutes {
		minutes = e.config.MinimumHopMinutes
	}

	return RoundMinutes(minutes)
}

// HaversineMiles is the great circle distance between two coordinates.
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusMiles * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// RoundMinutes rounds a duration to one decimal minute.
func RoundMinutes(minutes float64) float64 {
	return math.Round(minutes*10) / 10
}
