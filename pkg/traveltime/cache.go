package traveltime

import (
	"sort"
	"sync"
	"time"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/config"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/stationgraph"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/subway"

	"github.com/rs/zerolog/log"
)

// Cache keeps a rolling estimate of observed edge travel times, smoothed with
// an exponential moving average. It is written to by the periodic feed refresh
// and read by concurrent path queries, so access goes through a readers-writer
// lock. It never blocks path finding: stale or thin entries simply drop out of
// the snapshot and the solver falls back to static weights.
type Cache struct {
	mutex   sync.RWMutex
	entries map[stationgraph.EdgeKey]*entry

	smoothingFactor float64
	ttl             time.Duration
	minSamples      int

	minPlausibleMinutes float64
	maxPlausibleMinutes float64

	now func() time.Time
}

type entry struct {
	minutes   float64
	samples   int
	updatedAt time.Time
}

// EdgeEstimate is the inspectable form of one cache entry.
type EdgeEstimate struct {
	Key       stationgraph.EdgeKey
	Minutes   float64
	Samples   int
	UpdatedAt time.Time
}

func NewCache(cfg config.Realtime) *Cache {
	return &Cache{
		entries: map[stationgraph.EdgeKey]*entry{},

		smoothingFactor: cfg.SmoothingFactor,
		ttl:             time.Duration(cfg.TTLSeconds) * time.Second,
		minSamples:      cfg.MinSamples,

		minPlausibleMinutes: cfg.MinPlausibleMinutes,
		maxPlausibleMinutes: cfg.MaxPlausibleMinutes,

		now: time.Now,
	}
}

// RecordArrivals consumes a batch of trip arrival samples, derives
// consecutive-stop deltas per trip and folds them into the per-edge averages.
// Returns the number of edge observations applied.
func (c *Cache) RecordArrivals(samples []subway.ArrivalSample) int {
	byTrip := map[string][]subway.ArrivalSample{}
	for _, sample := range samples {
		if sample.TripID == "" || sample.StopID == "" || sample.ArrivalTime.IsZero() {
			continue
		}

		byTrip[sample.TripID] = append(byTrip[sample.TripID], sample)
	}

	applied := 0
	now := c.now()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, trip := range byTrip {
		sort.Slice(trip, func(a, b int) bool {
			return trip[a].ArrivalTime.Before(trip[b].ArrivalTime)
		})

		for position := 1; position < len(trip); position++ {
			previous := trip[position-1]
			current := trip[position]

			minutes := current.ArrivalTime.Sub(previous.ArrivalTime).Minutes()

			// Reject implausible deltas - duplicated stop records on the short
			// end, layovers and data gaps on the long end
			if minutes < c.minPlausibleMinutes || minutes > c.maxPlausibleMinutes {
				continue
			}

			key := stationgraph.EdgeKey{
				From: previous.StopID,
				To:   current.StopID,
				Line: current.RouteID,
			}

			c.observe(key, minutes, now)
			applied++
		}
	}

	if applied > 0 {
		log.Debug().Int("observations", applied).Int("edges", len(c.entries)).Msg("Recorded arrival samples")
	}

	return applied
}

func (c *Cache) observe(key stationgraph.EdgeKey, minutes float64, now time.Time) {
	existing := c.entries[key]

	if existing == nil {
		c.entries[key] = &entry{
			minutes:   minutes,
			samples:   1,
			updatedAt: now,
		}
		return
	}

	existing.minutes = c.smoothingFactor*minutes + (1-c.smoothingFactor)*existing.minutes
	existing.samples++
	existing.updatedAt = now
}

// Snapshot returns edge minutes for every entry fresher than the TTL with at
// least the minimum sample count. Callers treat a missing key as "use the
// static estimate".
func (c *Cache) Snapshot() map[stationgraph.EdgeKey]float64 {
	now := c.now()

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	snapshot := map[stationgraph.EdgeKey]float64{}

	for key, e := range c.entries {
		if now.Sub(e.updatedAt) > c.ttl {
			continue
		}
		if e.samples < c.minSamples {
			continue
		}

		snapshot[key] = stationgraph.RoundMinutes(e.minutes)
	}

	return snapshot
}

// Dump returns every entry regardless of freshness, for inspection tooling.
func (c *Cache) Dump() []EdgeEstimate {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var estimates []EdgeEstimate
	for key, e := range c.entries {
		estimates = append(estimates, EdgeEstimate{
			Key:       key,
			Minutes:   stationgraph.RoundMinutes(e.minutes),
			Samples:   e.samples,
			UpdatedAt: e.updatedAt,
		})
	}

	sort.Slice(estimates, func(a, b int) bool {
		if estimates[a].Key.From != estimates[b].Key.From {
			return estimates[a].Key.From < estimates[b].Key.From
		}
		return estimates[a].Key.To < estimates[b].Key.To
	})

	return estimates
}
