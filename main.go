package main

import (
	"os"
	"time"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/routeplanner"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/topology"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/traveltime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("TRANSITHUB_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("TRANSITHUB_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "transithub",
		Description: "Accessibility aware subway route planner",

		Commands: []*cli.Command{
			routeplanner.RegisterCLI(),
			topology.RegisterCLI(),
			traveltime.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
