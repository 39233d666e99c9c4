package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/interfaces"
	githubinfra "github.com/m-mizutani/obs-service-renderspec/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API configuration
type GitHub struct {
	Token  string `masq:"secret"`
	APIURL string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token for the gh changelog provider",
			Destination: &c.Token,
			Sources:     cli.EnvVars("RENDERSPEC_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("RENDERSPEC_GITHUB_API_URL"),
		},
	}
}

// NewClient creates a GitHub client from the configuration
func (c *GitHub) NewClient() (interfaces.GitHubClient, error) {
	client, err := githubinfra.NewClient(
		githubinfra.WithToken(c.Token),
		githubinfra.WithBaseURL(c.APIURL),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub client")
	}
	return client, nil
}
