package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/model"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/types"
)

const (
	changesSeparatorWidth = 67
	changesTimeLayout     = "Mon Jan _2 15:04:05 UTC 2006"
)

// BuildChangelog creates the changelog announcing version with commits as sub-entries
func BuildChangelog(version model.Version, commits []string) model.Changelog {
	changelog := model.Changelog{
		model.Line(fmt.Sprintf("update to version %s", version)),
	}
	if len(commits) > 0 {
		changelog = append(changelog, model.Nested(commits...))
	}
	return changelog
}

// FormatChanges renders items as a .changes entry. An empty changelog
// renders to an empty string.
func FormatChanges(items model.Changelog, email string, now time.Time) string {
	if len(items) == 0 {
		return ""
	}
	if email == "" {
		email = types.DefaultChangelogEmail
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("-", changesSeparatorWidth))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s - %s\n\n", now.UTC().Format(changesTimeLayout), email))

	for _, item := range items {
		if item.IsNested() {
			for _, line := range item.Lines {
				sb.WriteString(fmt.Sprintf("  * %s\n", line))
			}
			continue
		}
		sb.WriteString(fmt.Sprintf("- %s\n", item.Line))
	}

	sb.WriteString("\n")
	return sb.String()
}
