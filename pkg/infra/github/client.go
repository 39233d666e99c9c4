package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/interfaces"
)

// config holds internal client configuration
type config struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*config)

// WithToken authenticates API calls with a personal access token
func WithToken(token string) Option {
	return func(c *config) {
		c.token = token
	}
}

// WithBaseURL points the client at another API endpoint, e.g. GitHub Enterprise
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

type client struct {
	githubClient *github.Client
}

// NewClient creates a new GitHub client. Without a token, unauthenticated
// (rate limited) access is used.
func NewClient(opts ...Option) (interfaces.GitHubClient, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	githubClient := github.NewClient(cfg.httpClient)
	if cfg.token != "" {
		githubClient = githubClient.WithAuthToken(cfg.token)
	}

	if cfg.baseURL != "" {
		base := cfg.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API URL", goerr.V("url", cfg.baseURL))
		}
		githubClient.BaseURL = u
	}

	return &client{
		githubClient: githubClient,
	}, nil
}

// CompareCommitMessages returns commit messages between base and head,
// following pagination of the comparison
func (c *client) CompareCommitMessages(ctx context.Context, owner, repo, base, head string) ([]string, error) {
	opts := &github.ListOptions{PerPage: 100}

	var messages []string
	for {
		cmp, resp, err := c.githubClient.Repositories.CompareCommits(ctx, owner, repo, base, head, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to compare commits",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
				goerr.V("base", base),
				goerr.V("head", head),
			)
		}

		for _, commit := range cmp.Commits {
			messages = append(messages, commit.GetCommit().GetMessage())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return messages, nil
}
