package interfaces

import (
	"context"

	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/model"
)

// Runner executes an external command in dir and returns its stdout
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// VersionQuerier reads the declared version of a spec file.
// A missing file yields an undefined version and no error.
type VersionQuerier interface {
	Version(ctx context.Context, path string) (model.Version, error)
}

// Renderer produces a spec file from a template
type Renderer interface {
	Render(ctx context.Context, req *model.RenderRequest) error
}

// VCSClient manages tracked files of a package checkout
type VCSClient interface {
	IsCheckout(dir string) bool
	Add(ctx context.Context, dir, path string) error
	Remove(ctx context.Context, dir, path string) error
}

// Resolver turns a local path or URL into a local file path. Downloads are
// stored under tmpDir.
type Resolver interface {
	Resolve(ctx context.Context, ref, tmpDir string) (string, error)
}
