package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// File is the optional TOML configuration file. Its values only fill
// options that were not given on the command line or in the environment.
type File struct {
	Changelog struct {
		Provider string `toml:"provider"`
		Email    string `toml:"email"`
	} `toml:"changelog"`

	GitHub struct {
		Token  string `toml:"token" masq:"secret"`
		APIURL string `toml:"api_url"`
	} `toml:"github"`

	Tools struct {
		RPMSpec    string `toml:"rpmspec"`
		Renderspec string `toml:"renderspec"`
		Osc        string `toml:"osc"`
	} `toml:"tools"`
}

// ConfigPath holds the location of the configuration file
type ConfigPath struct {
	Path string
}

// Flags returns CLI flags for the configuration file
func (c *ConfigPath) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path of a TOML configuration file",
			Destination: &c.Path,
			Sources:     cli.EnvVars("RENDERSPEC_CONFIG"),
		},
	}
}

// LoadFile reads and decodes a TOML configuration file. Unknown keys are rejected.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open config file", goerr.V("path", path))
	}
	defer f.Close()

	var cfg File
	decoder := toml.NewDecoder(f).DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to decode config file", goerr.V("path", path))
	}

	return &cfg, nil
}

// Apply copies file values into the flag configurations for every flag
// isSet reports as unset
func (f *File) Apply(isSet func(name string) bool, render *Render, github *GitHub, tools *Tools) {
	fill := func(flag string, dst *string, value string) {
		if value != "" && !isSet(flag) {
			*dst = value
		}
	}

	fill("changelog-provider", &render.ChangelogProvider, f.Changelog.Provider)
	fill("changelog-email", &render.ChangelogEmail, f.Changelog.Email)
	fill("github-token", &github.Token, f.GitHub.Token)
	fill("github-api-url", &github.APIURL, f.GitHub.APIURL)
	fill("rpmspec-path", &tools.RPMSpec, f.Tools.RPMSpec)
	fill("renderspec-path", &tools.Renderspec, f.Tools.Renderspec)
	fill("osc-path", &tools.Osc, f.Tools.Osc)
}
