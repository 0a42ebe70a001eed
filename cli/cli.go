package cli

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func Handle() {
	shouldExit := true
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Send commands to an active planner instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive()
					return nil
				},
			},
			{
				Name:    "report",
				Aliases: []string{"r"},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "drive-file",
						Usage: "The sqlite drive file to read recorded drives from, defaults to the configured record path",
						Aliases: []string{
							"f",
						},
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "The html file to write the drive report to",
						Aliases: []string{
							"o",
						},
						Value: "./report.html",
					},
				},
				Usage: "Render an html report from a recorded drive",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return report(cmd.String("drive-file"), cmd.String("output"))
				},
			},
		},
		Name:  "Longplan",
		Usage: "Start an instance of the longitudinal planner",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}
