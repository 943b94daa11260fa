package routeplanner

import (
	"encoding/json"
	"fmt"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/config"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/outages"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/subway"
	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/topology"

	"github.com/kr/pretty"
	"github.com/liip/sheriff"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "route",
		Usage: "Plan accessibility aware routes",
		Subcommands: []*cli.Command{
			{
				Name:  "plan",
				Usage: "find the fastest route between two stations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "topology",
						Usage:    "path to the topology csv",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "outages",
						Usage: "path to an outage snapshot json file",
					},
					&cli.StringFlag{
						Name:     "from",
						Usage:    "origin station id",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "destination station id",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-alternatives",
						Usage: "cap on alternate routes",
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "dump the full result structure",
					},
				},
				Action: func(c *cli.Context) error {
					cfg := config.LoadFromEnvironment()

					topo, err := topology.LoadFile(c.String("topology"))
					if err != nil {
						return err
					}

					var outageRecords []subway.EquipmentOutage
					if c.String("outages") != "" {
						outageRecords, err = outages.LoadFile(c.String("outages"))
						if err != nil {
							return err
						}
					}

					planner := NewPlanner(topo, cfg)
					results := planner.FindRoutes(c.String("from"), c.String("to"), outageRecords, Options{
						MaxAlternatives: c.Int("max-alternatives"),
					})

					if c.Bool("debug") {
						pretty.Println(results)
						return nil
					}

					reduced, err := sheriff.Marshal(&sheriff.Options{
						Groups: []string{"basic"},
					}, results)
					if err != nil {
						return err
					}

					body, err := json.MarshalIndent(reduced, "", "  ")
					if err != nil {
						return err
					}

					fmt.Println(string(body))

					return nil
				},
			},
		},
	}
}
