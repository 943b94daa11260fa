package traveltime

import (
	"fmt"
	"os"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/config"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "realtime",
		Usage: "Inspect live travel time data",
		Subcommands: []*cli.Command{
			{
				Name:  "inspect",
				Usage: "decode a GTFS-RT feed dump and show derived edge travel times",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "feed",
						Usage:    "path to a GTFS-RT protobuf file",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					body, err := os.ReadFile(c.String("feed"))
					if err != nil {
						return err
					}

					samples, err := ParseFeed(body)
					if err != nil {
						return err
					}

					cache := NewCache(config.LoadFromEnvironment().Realtime)
					applied := cache.RecordArrivals(samples)

					log.Info().
						Int("samples", len(samples)).
						Int("observations", applied).
						Msg("Decoded realtime feed")

					for _, estimate := range cache.Dump() {
						fmt.Printf("%s -> %s (%s)  %.1f min over %d samples\n",
							estimate.Key.From,
							estimate.Key.To,
							estimate.Key.Line,
							estimate.Minutes,
							estimate.Samples,
						)
					}

					return nil
				},
			},
		},
	}
}
