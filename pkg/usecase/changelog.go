package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/interfaces"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/model"
)

type changelogUseCase struct {
	githubClient interfaces.GitHubClient
}

// NewChangelog creates a new instance of ChangelogUseCase. githubClient may
// be nil when no gh provider is used.
func NewChangelog(githubClient interfaces.GitHubClient) interfaces.ChangelogUseCase {
	return &changelogUseCase{
		githubClient: githubClient,
	}
}

// Fetch returns commit summaries between from and to using provider
func (uc *changelogUseCase) Fetch(ctx context.Context, provider *model.ChangelogProvider, from, to model.Version) ([]string, error) {
	logger := ctxlog.From(ctx)

	switch provider.Kind {
	case model.ChangelogProviderNone:
		return []string{}, nil

	case model.ChangelogProviderGitHub:
		if uc.githubClient == nil {
			return nil, goerr.New("GitHub client is not configured", goerr.V("provider", provider.String()))
		}

		logger.Info("Fetching changelog from GitHub",
			"owner", provider.Owner(),
			"repo", provider.Repo(),
			"from", from.String(),
			"to", to.String(),
		)

		messages, err := uc.githubClient.CompareCommitMessages(ctx, provider.Owner(), provider.Repo(), from.String(), to.String())
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch changelog from GitHub",
				goerr.V("owner", provider.Owner()),
				goerr.V("repo", provider.Repo()),
			)
		}

		summaries := SummarizeCommits(messages)
		logger.Debug("Fetched changelog", "commits", len(messages), "entries", len(summaries))
		return summaries, nil

	default:
		return nil, goerr.Wrap(model.ErrUnsupportedChangelogProvider, "cannot fetch changelog",
			goerr.V("kind", string(provider.Kind)),
		)
	}
}

// SummarizeCommits reduces commit messages to their subject lines. Merge
// commits and empty subjects are dropped and each subject is kept once, in
// order of first appearance.
func SummarizeCommits(messages []string) []string {
	summaries := []string{}
	seen := make(map[string]struct{})

	for _, msg := range messages {
		subject, _, _ := strings.Cut(msg, "\n")
		subject = strings.TrimSpace(subject)
		if subject == "" || strings.HasPrefix(subject, "Merge ") {
			continue
		}
		if _, ok := seen[subject]; ok {
			continue
		}
		seen[subject] = struct{}{}
		summaries = append(summaries, subject)
	}

	return summaries
}
