package interfaces

import "context"

// GitHubClient defines operations for interacting with GitHub API
type GitHubClient interface {
	// CompareCommitMessages returns the full commit messages between two refs, oldest first
	CompareCommitMessages(ctx context.Context, owner, repo, base, head string) ([]string, error)
}
