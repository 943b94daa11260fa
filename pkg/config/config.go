package config

import (
	"os"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/util"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Estimator holds the static edge weight model constants.
type Estimator struct {
	LocalBaseMinutes      float64 `yaml:"localbaseminutes"`
	ExpressBaseMinutes    float64 `yaml:"expressbaseminutes"`
	LocalSpeedMPH         float64 `yaml:"localspeedmph"`
	ExpressSpeedMPH       float64 `yaml:"expressspeedmph"`
	LongHopThresholdMiles float64 `yaml:"longhopthresholdmiles"`
	LongHopMinutesPerMile float64 `yaml:"longhopminutespermile"`
	MinimumHopMinutes     float64 `yaml:"minimumhopminutes"`
}

// Realtime holds the live travel time cache constants.
type Realtime struct {
	SmoothingFactor     float64 `yaml:"smoothingfactor"`
	TTLSeconds          int     `yaml:"ttlseconds"`
	MinSamples          int     `yaml:"minsamples"`
	MinPlausibleMinutes float64 `yaml:"minplausibleminutes"`
	MaxPlausibleMinutes float64 `yaml:"maxplausibleminutes"`
}

// Planner holds every tuning constant of the routing core. Zero values are
// never used directly; start from Defaults and overlay a yaml document.
type Planner struct {
	Estimator Estimator `yaml:"estimator"`

	TransferPenaltyMinutes float64 `yaml:"transferpenaltyminutes"`

	Realtime Realtime `yaml:"realtime"`

	MaxAlternatives     int     `yaml:"maxalternatives"`
	AlternateTimeFactor float64 `yaml:"alternatetimefactor"`
}

func Defaults() Planner {
	var planner Planner

	planner.Estimator.LocalBaseMinutes = 1.5
	planner.Estimator.ExpressBaseMinutes = 1.0
	planner.Estimator.LocalSpeedMPH = 17
	planner.Estimator.ExpressSpeedMPH = 25
	planner.Estimator.LongHopThresholdMiles = 2
	planner.Estimator.LongHopMinutesPerMile = 0.5
	planner.Estimator.MinimumHopMinutes = 1

	planner.TransferPenaltyMinutes = 3

	planner.Realtime.SmoothingFactor = 0.3
	planner.Realtime.TTLSeconds = 30
	planner.Realtime.MinSamples = 2
	planner.Realtime.MinPlausibleMinutes = 0.5
	planner.Realtime.MaxPlausibleMinutes = 30

	planner.MaxAlternatives = 3
	planner.AlternateTimeFactor = 1.5

	return planner
}

// Load reads a yaml tuning document over the defaults.
func Load(path string) (Planner, error) {
	planner := Defaults()

	file, err := os.Open(path)
	if err != nil {
		return planner, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&planner); err != nil {
		return planner, err
	}

	return planner, nil
}

// LoadFromEnvironment returns the config named by TRANSITHUB_CONFIG, or the
// defaults when the variable is unset.
func LoadFromEnvironment() Planner {
	env := util.GetEnvironmentVariables()

	if env["TRANSITHUB_CONFIG"] == "" {
		return Defaults()
	}

	planner, err := Load(env["TRANSITHUB_CONFIG"])
	if err != nil {
		log.Error().Err(err).Str("path", env["TRANSITHUB_CONFIG"]).Msg("Failed to load planner config, using defaults")
		return Defaults()
	}

	return planner
}
