package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Name = "SampleFinder"
	app.Usage = "Mobile API backend"
	app.Action = cli.ShowAppHelp
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path of the TOML configuration file",
			EnvVars: []string{"CONFIG_FILE"},
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start the mobile api service",
			Category:    "Api",
			Description: `The main service serving all mobile endpoints.`,
		},
	}

	s.app = app
}
