package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ChangeItem is a single entry of a changelog. It is either one line or a
// nested list of lines rendered one level deeper.
type ChangeItem struct {
	Line  string
	Lines []string
}

// Line creates a top-level changelog item
func Line(s string) ChangeItem {
	return ChangeItem{Line: s}
}

// Nested creates a changelog item holding sub-entries
func Nested(lines ...string) ChangeItem {
	if lines == nil {
		lines = []string{}
	}
	return ChangeItem{Lines: lines}
}

// IsNested reports whether the item holds sub-entries
func (i ChangeItem) IsNested() bool {
	return i.Lines != nil
}

// Changelog is an ordered list of change items
type Changelog []ChangeItem

// ChangelogProviderKind identifies where commit history comes from
type ChangelogProviderKind string

const (
	ChangelogProviderNone   ChangelogProviderKind = "none"
	ChangelogProviderGitHub ChangelogProviderKind = "gh"
)

var (
	// ErrUnsupportedChangelogProvider is returned for unknown provider kinds
	ErrUnsupportedChangelogProvider = goerr.New("unsupported changelog provider")

	// ErrInvalidChangelogProvider is returned when a known provider has wrong parameters
	ErrInvalidChangelogProvider = goerr.New("invalid changelog provider parameters")
)

// ChangelogProvider is a parsed provider token of the form "kind,param,..."
type ChangelogProvider struct {
	Kind   ChangelogProviderKind
	Params []string
}

// ParseChangelogProvider parses a provider token. An empty token is the same as "none".
// "gh" requires exactly two parameters: owner and repository.
func ParseChangelogProvider(token string) (*ChangelogProvider, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return &ChangelogProvider{Kind: ChangelogProviderNone}, nil
	}

	parts := strings.Split(token, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	kind := ChangelogProviderKind(parts[0])
	params := parts[1:]

	switch kind {
	case ChangelogProviderNone:
		return &ChangelogProvider{Kind: kind}, nil

	case ChangelogProviderGitHub:
		if len(params) != 2 || params[0] == "" || params[1] == "" {
			return nil, goerr.Wrap(ErrInvalidChangelogProvider, "gh provider requires owner and repository",
				goerr.V("token", token),
				goerr.V("params", len(params)),
			)
		}
		return &ChangelogProvider{Kind: kind, Params: params}, nil

	default:
		return nil, goerr.Wrap(ErrUnsupportedChangelogProvider, "unknown provider kind",
			goerr.V("token", token),
			goerr.V("kind", string(kind)),
		)
	}
}

// Owner returns the repository owner of a gh provider
func (p *ChangelogProvider) Owner() string {
	if len(p.Params) < 1 {
		return ""
	}
	return p.Params[0]
}

// Repo returns the repository name of a gh provider
func (p *ChangelogProvider) Repo() string {
	if len(p.Params) < 2 {
		return ""
	}
	return p.Params[1]
}

func (p *ChangelogProvider) String() string {
	if len(p.Params) == 0 {
		return string(p.Kind)
	}
	return string(p.Kind) + "," + strings.Join(p.Params, ",")
}
