package dataimporter

import (
	"github.com/roamplan/roam/pkg/database"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Imports seed journeys into the database",
		Subcommands: []*cli.Command{
			{
				Name:  "file",
				Usage: "import journeys & stops from a YAML seed file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "path",
						Usage:    "path of the YAML seed file",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					return ImportFile(c.String("path"))
				},
			},
		},
	}
}
