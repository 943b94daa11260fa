package topology

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "topology",
		Usage: "Inspect the static line topology",
		Subcommands: []*cli.Command{
			{
				Name:  "lines",
				Usage: "list loaded lines with station counts",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "topology",
						Usage:    "path to the topology csv",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					loaded, err := LoadFile(c.String("topology"))
					if err != nil {
						return err
					}

					for _, line := range loaded.Lines {
						fmt.Printf("%-4s %-24s %s  %d stations, %d terminals\n",
							line.ID,
							LineGroup(line.ID),
							LineColour(line.ID),
							len(line.Stations),
							len(line.Terminals()),
						)
					}

					return nil
				},
			},
		},
	}
}
