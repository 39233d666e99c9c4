package config

import (
	"github.com/m-mizutani/obs-service-renderspec/pkg/infra/command"
	"github.com/m-mizutani/obs-service-renderspec/pkg/infra/osc"
	"github.com/m-mizutani/obs-service-renderspec/pkg/infra/renderspec"
	"github.com/m-mizutani/obs-service-renderspec/pkg/infra/rpm"
	"github.com/urfave/cli/v3"
)

// Tools holds paths of the external binaries
type Tools struct {
	RPMSpec    string
	Renderspec string
	Osc        string
}

// Flags returns CLI flags for external tool configuration
func (c *Tools) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "rpmspec-path",
			Usage:       "Path of the rpmspec binary",
			Value:       rpm.Tool,
			Destination: &c.RPMSpec,
			Sources:     cli.EnvVars("RENDERSPEC_RPMSPEC_PATH"),
		},
		&cli.StringFlag{
			Name:        "renderspec-path",
			Usage:       "Path of the renderspec binary",
			Value:       renderspec.Tool,
			Destination: &c.Renderspec,
			Sources:     cli.EnvVars("RENDERSPEC_RENDERSPEC_PATH"),
		},
		&cli.StringFlag{
			Name:        "osc-path",
			Usage:       "Path of the osc binary",
			Value:       osc.Tool,
			Destination: &c.Osc,
			Sources:     cli.EnvVars("RENDERSPEC_OSC_PATH"),
		},
	}
}

// Runner creates a command runner honoring the configured tool paths
func (c *Tools) Runner() *command.Runner {
	return command.New(
		command.WithToolPath(rpm.Tool, c.RPMSpec),
		command.WithToolPath(renderspec.Tool, c.Renderspec),
		command.WithToolPath(osc.Tool, c.Osc),
	)
}
