package interfaces

import (
	"context"

	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/model"
)

// ChangelogUseCase retrieves change summaries between two versions
type ChangelogUseCase interface {
	// Fetch returns one summary line per relevant commit between from and to
	Fetch(ctx context.Context, provider *model.ChangelogProvider, from, to model.Version) ([]string, error)
}

// RenderUseCase runs the whole render pipeline
type RenderUseCase interface {
	Run(ctx context.Context, opts *model.RenderOptions) (*model.RenderResult, error)
}
