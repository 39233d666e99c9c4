package config

import (
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/model"
	"github.com/m-mizutani/obs-service-renderspec/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Render holds the options of a render run
type Render struct {
	OutDir            string
	InputTemplate     string
	OutputName        string
	SpecStyle         string
	Epochs            string
	Requirements      string
	ChangelogProvider string
	ChangelogEmail    string
}

// Flags returns CLI flags for the render run
func (c *Render) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "outdir",
			Usage:       "Output directory passed by OBS (unused, files are written to the package directory)",
			Destination: &c.OutDir,
			Sources:     cli.EnvVars("RENDERSPEC_OUTDIR"),
		},
		&cli.StringFlag{
			Name:        "input-template",
			Usage:       "Path or http(s) URL of the spec template",
			Required:    true,
			Destination: &c.InputTemplate,
			Sources:     cli.EnvVars("RENDERSPEC_INPUT_TEMPLATE"),
		},
		&cli.StringFlag{
			Name:        "output-name",
			Usage:       "Name of the rendered spec file (default: template name without .j2)",
			Destination: &c.OutputName,
			Sources:     cli.EnvVars("RENDERSPEC_OUTPUT_NAME"),
		},
		&cli.StringFlag{
			Name:        "spec-style",
			Usage:       "Spec style passed to renderspec (suse, fedora)",
			Value:       usecase.DefaultSpecStyle,
			Destination: &c.SpecStyle,
			Sources:     cli.EnvVars("RENDERSPEC_SPEC_STYLE"),
		},
		&cli.StringFlag{
			Name:        "epochs",
			Usage:       "Path or http(s) URL of the epochs file",
			Destination: &c.Epochs,
			Sources:     cli.EnvVars("RENDERSPEC_EPOCHS"),
		},
		&cli.StringFlag{
			Name:        "requirements",
			Usage:       "Path or http(s) URL of the requirements file",
			Destination: &c.Requirements,
			Sources:     cli.EnvVars("RENDERSPEC_REQUIREMENTS"),
		},
		&cli.StringFlag{
			Name:        "changelog-provider",
			Usage:       "Changelog provider: none or gh,<owner>,<repo>",
			Destination: &c.ChangelogProvider,
			Sources:     cli.EnvVars("RENDERSPEC_CHANGELOG_PROVIDER"),
		},
		&cli.StringFlag{
			Name:        "changelog-email",
			Usage:       "Contact written into the .changes header",
			Destination: &c.ChangelogEmail,
			Sources:     cli.EnvVars("RENDERSPEC_CHANGELOG_EMAIL"),
		},
	}
}

// Options converts the configuration into use case options
func (c *Render) Options(workDir string) *model.RenderOptions {
	return &model.RenderOptions{
		InputTemplate:     c.InputTemplate,
		OutputName:        c.OutputName,
		SpecStyle:         c.SpecStyle,
		Epochs:            c.Epochs,
		Requirements:      c.Requirements,
		ChangelogProvider: c.ChangelogProvider,
		ChangelogEmail:    c.ChangelogEmail,
		WorkDir:           workDir,
	}
}
